package export

import (
	"strings"

	"recipeflow/internal/recipe"
)

// RXF renders the tagged recipe exchange format: a "[[[[[" banner, one
// `Tag: value` line per field, then pipe-separated ingredients, directions
// and notes sections, closed by "]]]]]".
type RXF struct{}

func (RXF) Name() string      { return "rxf" }
func (RXF) Extension() string { return ".rxf" }

func (RXF) Encode(rec *recipe.Record, sink *Sink) error {
	sink.Line("[[[[[")
	sink.Linef("Title: %s", rec.Name)
	sink.Linef("Recipe-ID: %s", rec.ID)
	sink.Linef("Format: %s", rec.Format)
	for _, b := range recipe.Buckets {
		if values := rec.Categories(b); len(values) > 0 {
			sink.Linef("%s: %s", labelFor(b), strings.Join(values, ", "))
		}
	}
	if rec.Serves != "" {
		sink.Linef("Serves: %s", rec.Serves)
	}
	if rec.Makes != "" {
		sink.Linef("Makes: %s", strings.TrimSpace(rec.Makes+" "+rec.MakesUnit))
	}
	for _, tag := range scalarTags(rec) {
		if tag.value != "" {
			sink.Linef("%s: %s", tag.label, tag.value)
		}
	}
	sink.Line("::Ingredients")
	for _, a := range rec.Ingredients {
		sink.Line(strings.Join([]string{a.Amount, a.Unit, escapePipe(a.Ingredient), escapePipe(a.Preparation)}, "|"))
	}
	sink.Line("::Directions")
	for _, line := range rec.Directions {
		sink.Line(line)
	}
	if len(rec.Notes) > 0 {
		sink.Line("::Notes")
		for _, note := range rec.Notes {
			sink.Line(note)
		}
	}
	sink.Line("]]]]]")
	return nil
}

func escapePipe(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}
