package dialect

import (
	"fmt"
	"strings"

	"recipeflow/internal/envelope"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// Dialect is one recipe source format.
type Dialect interface {
	Format() recipe.Format
	IsStart(line string) bool
	IsEnd(line string) bool
	// Decode turns the lines between a start and end marker into a record.
	Decode(lines []string) (*recipe.Record, error)
}

// Detector tries its dialects in the order they were registered.
type Detector struct {
	dialects []Dialect
}

// NewDetector returns a detector over the given dialects. Earlier dialects
// take priority when more than one start test matches.
func NewDetector(dialects ...Dialect) *Detector {
	return &Detector{dialects: append([]Dialect(nil), dialects...)}
}

// Dialects returns the registered dialects in priority order.
func (d *Detector) Dialects() []Dialect {
	return append([]Dialect(nil), d.dialects...)
}

// DetectStart returns the first dialect whose start test accepts line.
func (d *Detector) DetectStart(line string) (Dialect, bool) {
	for _, candidate := range d.dialects {
		if candidate.IsStart(line) {
			return candidate, true
		}
	}
	return nil, false
}

// DetectEnd reports whether line ends the current recipe of dialect cur: a
// group break, the dialect's own end marker, or the start of another recipe.
func (d *Detector) DetectEnd(cur Dialect, line string) bool {
	if envelope.IsGroupBreak(line) {
		return true
	}
	if cur != nil && cur.IsEnd(line) {
		return true
	}
	_, ok := d.DetectStart(line)
	return ok
}

// unsupported recognizes a dialect's banners but refuses to decode it.
type unsupported struct {
	format recipe.Format
	start  func(string) bool
	end    func(string) bool
}

func (u unsupported) Format() recipe.Format    { return u.format }
func (u unsupported) IsStart(line string) bool { return u.start(line) }
func (u unsupported) IsEnd(line string) bool   { return u.end(line) }

func (u unsupported) Decode([]string) (*recipe.Record, error) {
	return nil, services.Wrap(
		services.ErrUnsupportedDialect,
		"decode",
		string(u.format),
		fmt.Sprintf("no decoder for %s recipes", u.format),
		nil,
	)
}

// MasterCook recognizes MasterCook export banners.
func MasterCook() Dialect {
	return unsupported{
		format: recipe.FormatMasterCook,
		start: func(line string) bool {
			t := strings.TrimSpace(line)
			if strings.HasPrefix(t, ">") {
				return false
			}
			return strings.HasPrefix(t, "*") && strings.Contains(strings.ToLower(t), "exported from") &&
				strings.Contains(strings.ToLower(t), "mastercook")
		},
		end: func(line string) bool {
			return strings.HasPrefix(strings.TrimSpace(line), "- - - - - - - - - -")
		},
	}
}

// RXF recognizes the recipe exchange format banner.
func RXF() Dialect {
	return unsupported{
		format: recipe.FormatRXF,
		start: func(line string) bool {
			return strings.HasPrefix(strings.TrimLeft(line, " \t"), "[[[[[")
		},
		end: func(line string) bool {
			return strings.HasPrefix(strings.TrimSpace(line), "]]]]]")
		},
	}
}
