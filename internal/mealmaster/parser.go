package mealmaster

import (
	"strings"

	"recipeflow/internal/dialect"
	"recipeflow/internal/fields"
	"recipeflow/internal/recipe"
	"recipeflow/internal/textutil"
)

// State is a position in the decode state machine.
type State int

const (
	StateTitle State = iota
	StateCategories
	StateYield
	StateIngredients
	StateDirections
	StateDone
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateCategories:
		return "categories"
	case StateYield:
		return "yield"
	case StateIngredients:
		return "ingredients"
	case StateDirections:
		return "directions"
	default:
		return "done"
	}
}

// Lexicon is the lookup surface the parser needs.
type Lexicon interface {
	fields.UnitTranslator
	fields.ParagraphStarters
}

var categoryTags = []struct {
	prefix string
	bucket recipe.Bucket
}{
	{"categories:", recipe.BucketChapter},
	{"category:", recipe.BucketChapter},
	{"appliance:", recipe.BucketAppliance},
	{"diet:", recipe.BucketDiet},
	{"course:", recipe.BucketCourse},
	{"cuisine:", recipe.BucketCuisine},
	{"occasion:", recipe.BucketOccasion},
}

var yieldTags = []string{"yield:", "servings:", "serves:", "makes:"}

// Parser decodes one Meal-Master recipe fed line by line.
type Parser struct {
	lex        Lexicon
	state      State
	rec        *recipe.Record
	directions *fields.Directions
}

// NewParser returns a parser in the Title state with a fresh record.
func NewParser(lex Lexicon, width int) *Parser {
	return &Parser{
		lex:        lex,
		state:      StateTitle,
		rec:        recipe.New(recipe.FormatMealMaster),
		directions: fields.NewDirections(width, lex),
	}
}

// State returns the current state.
func (p *Parser) State() State {
	return p.state
}

// Feed processes one line. Lines after the end marker are ignored.
func (p *Parser) Feed(line string) {
	line = strings.TrimRight(line, "\r\n")
	for p.step(line) {
	}
}

// Finish flushes the directions formatter and returns the record. The parser
// must not be fed afterwards.
func (p *Parser) Finish() *recipe.Record {
	p.rec.Directions = p.directions.Lines()
	p.state = StateDone
	return p.rec
}

// step handles line in the current state. It returns true when the state
// changed without consuming the line, so the line must be offered again.
func (p *Parser) step(line string) bool {
	if p.state == StateDone {
		return false
	}
	if dialect.IsMealMasterEnd(line) {
		p.state = StateDone
		return false
	}
	blank := strings.TrimSpace(line) == ""
	switch p.state {
	case StateTitle:
		if blank {
			return false
		}
		p.rec.Name = parseTitle(line)
		p.state = StateCategories
	case StateCategories:
		if blank {
			return false
		}
		if !p.addCategories(line) {
			p.state = StateYield
			return true
		}
	case StateYield:
		if blank {
			return false
		}
		p.state = StateIngredients
		return !p.parseYield(line)
	case StateIngredients:
		return p.ingredient(line, blank)
	case StateDirections:
		p.directions.Add(line)
	}
	return false
}

func parseTitle(line string) string {
	t := strings.TrimSpace(line)
	if len(t) >= len("title:") && strings.EqualFold(t[:len("title:")], "title:") {
		t = t[len("title:"):]
	}
	return textutil.TitleCase(t)
}

func (p *Parser) addCategories(line string) bool {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	for _, tag := range categoryTags {
		if !strings.HasPrefix(lower, tag.prefix) {
			continue
		}
		for _, value := range strings.Split(t[len(tag.prefix):], ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			p.rec.AddCategory(tag.bucket, value)
		}
		return true
	}
	return false
}

// parseYield reports whether line was taken as the yield: either it carries
// a yield tag or it starts with an amount ("6 servings").
func (p *Parser) parseYield(line string) bool {
	t := strings.TrimSpace(line)
	lower := strings.ToLower(t)
	if !hasYieldTag(lower) {
		pos, amount := fields.Amount(t, 0)
		if amount == "" {
			return false
		}
		p.rec.Makes = amount
		p.rec.MakesUnit = strings.Join(strings.Fields(t[pos:]), " ")
		return true
	}
	for _, tag := range yieldTags {
		if !strings.HasPrefix(lower, tag) {
			continue
		}
		value := strings.TrimSpace(t[len(tag):])
		switch tag {
		case "servings:", "serves:":
			p.rec.Serves = value
		default:
			pos, amount := fields.Amount(value, 0)
			if amount == "" {
				p.rec.Makes = value
				return true
			}
			p.rec.Makes = amount
			p.rec.MakesUnit = strings.TrimSpace(value[pos:])
		}
		return true
	}
	return false
}

func hasYieldTag(lower string) bool {
	for _, tag := range yieldTags {
		if strings.HasPrefix(lower, tag) {
			return true
		}
	}
	return false
}

func (p *Parser) ingredient(line string, blank bool) bool {
	if blank {
		if len(p.rec.Ingredients) > 0 {
			p.state = StateDirections
		}
		return false
	}
	if section, ok := fields.RewriteSection(line); ok {
		p.rec.Ingredients = append(p.rec.Ingredients, recipe.AUIP{Ingredient: section})
		return false
	}
	if fields.IsPreparationOnly(line) {
		p.state = StateDirections
		return true
	}
	p.rec.AddIngredient(fields.SplitAUIP(line, p.lex))
	return false
}
