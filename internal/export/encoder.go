package export

import (
	"fmt"
	"sort"
	"strings"

	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// Encoder renders one recipe.
type Encoder interface {
	Name() string
	Extension() string
	Encode(rec *recipe.Record, sink *Sink) error
}

// Framer is implemented by encoders that wrap a document's recipes.
type Framer interface {
	Begin(sink *Sink, document string)
	End(sink *Sink)
}

var registry = map[string]Encoder{
	"text": Text{},
	"rxf":  RXF{},
	"xml":  XML{},
}

// Lookup returns the encoder registered under name.
func Lookup(name string) (Encoder, bool) {
	enc, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return enc, ok
}

// Names lists the registered encoder names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormats resolves every name, failing on the first unknown one.
func ForFormats(names []string) ([]Encoder, error) {
	encoders := make([]Encoder, 0, len(names))
	for _, name := range names {
		enc, ok := Lookup(name)
		if !ok {
			return nil, services.Wrap(
				services.ErrConfiguration,
				"export",
				"resolve encoder",
				fmt.Sprintf("unknown format %q (supported: %s)", name, strings.Join(Names(), ", ")),
				nil,
			)
		}
		encoders = append(encoders, enc)
	}
	return encoders, nil
}

// yieldText renders the yield of rec for human-readable output.
func yieldText(rec *recipe.Record) string {
	switch {
	case rec.Serves != "":
		return rec.Serves + " servings"
	case rec.Makes != "":
		return strings.TrimSpace(rec.Makes + " " + rec.MakesUnit)
	default:
		return ""
	}
}

type labeled struct {
	label string
	value string
}

// scalarTags lists the optional scalar fields with their canonical tags.
func scalarTags(rec *recipe.Record) []labeled {
	return []labeled{
		{"From", rec.Author},
		{"Source", rec.Source},
		{"Copyright", rec.Copyright},
		{"Description", rec.Description},
		{"Imported-From", rec.ImportFrom},
		{"Time-Prep", rec.TimePrep},
		{"Time-Wait", rec.TimeWait},
		{"Time-Cook", rec.TimeCook},
		{"Time-Rest", rec.TimeRest},
		{"Time-Total", rec.TimeTotal},
	}
}
