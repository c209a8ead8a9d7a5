package mealmaster

import (
	"fmt"

	"recipeflow/internal/dialect"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// DefaultWidth is the directions wrap width used when none is configured.
const DefaultWidth = 72

// Decoder is the Meal-Master dialect. It holds only read-only lookups and is
// safe for concurrent use; every Decode call gets its own Parser.
type Decoder struct {
	lex   Lexicon
	width int
}

// NewDecoder returns a Meal-Master decoder wrapping directions at width
// columns. A non-positive width selects DefaultWidth.
func NewDecoder(lex Lexicon, width int) *Decoder {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Decoder{lex: lex, width: width}
}

var _ dialect.Dialect = (*Decoder)(nil)

// Format identifies Meal-Master records.
func (d *Decoder) Format() recipe.Format { return recipe.FormatMealMaster }

// IsStart reports a Meal-Master start banner.
func (d *Decoder) IsStart(line string) bool { return dialect.IsMealMasterStart(line) }

// IsEnd reports a Meal-Master end marker.
func (d *Decoder) IsEnd(line string) bool { return dialect.IsMealMasterEnd(line) }

// Decode parses the lines of one recipe. A leading start banner is skipped
// and parsing stops at the first end marker.
func (d *Decoder) Decode(lines []string) (*recipe.Record, error) {
	p := NewParser(d.lex, d.width)
	for i, line := range lines {
		if i == 0 && d.IsStart(line) {
			continue
		}
		p.Feed(line)
		if p.State() == StateDone {
			break
		}
	}
	rec := p.Finish()
	if rec.Name == "" && len(rec.Ingredients) == 0 && len(rec.Directions) == 0 {
		return nil, services.Wrap(
			services.ErrValidation,
			"decode",
			string(recipe.FormatMealMaster),
			fmt.Sprintf("empty recipe in %d lines", len(lines)),
			nil,
		)
	}
	return rec, nil
}
