package export

import (
	"fmt"
	"strings"

	"recipeflow/internal/recipe"
)

// Text renders recipes as plain, readable text.
type Text struct{}

func (Text) Name() string      { return "text" }
func (Text) Extension() string { return ".txt" }

func (Text) Encode(rec *recipe.Record, sink *Sink) error {
	title := rec.Name
	if title == "" {
		title = "Untitled"
	}
	sink.Line(title)
	sink.Line(strings.Repeat("=", len(title)))
	for _, b := range recipe.Buckets {
		if values := rec.Categories(b); len(values) > 0 {
			sink.Linef("%s: %s", labelFor(b), strings.Join(values, ", "))
		}
	}
	if y := yieldText(rec); y != "" {
		sink.Linef("Yield: %s", y)
	}
	for _, tag := range scalarTags(rec) {
		if tag.value != "" {
			sink.Linef("%s: %s", tag.label, tag.value)
		}
	}
	if len(rec.Ingredients) > 0 {
		sink.Blank()
		for _, a := range rec.Ingredients {
			sink.Line(ingredientLine(a))
		}
	}
	if len(rec.Directions) > 0 {
		sink.Blank()
		for _, line := range rec.Directions {
			sink.Line(line)
		}
	}
	if len(rec.Notes) > 0 {
		sink.Blank()
		sink.Line("Notes:")
		for _, note := range rec.Notes {
			sink.Linef("  - %s", note)
		}
	}
	sink.Blank()
	sink.Linef("Recipe-ID: %s", rec.ID)
	sink.Blank()
	return nil
}

func ingredientLine(a recipe.AUIP) string {
	text := a.Ingredient
	if a.Preparation != "" {
		text += "; " + a.Preparation
	}
	if a.Amount == "" && a.Unit == "" {
		return fmt.Sprintf("%-7s %-6s %s", "", "", text)
	}
	return strings.TrimRight(fmt.Sprintf("%7s %-6s %s", a.Amount, a.Unit, text), " ")
}

func labelFor(b recipe.Bucket) string {
	if b == recipe.BucketChapter {
		return "Categories"
	}
	s := string(b)
	return strings.ToUpper(s[:1]) + s[1:]
}
