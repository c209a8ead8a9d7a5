package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"recipeflow/internal/recipe"
)

//go:embed tables.toml
var defaultTables []byte

// Category is the bucket and value a title word files a recipe under.
type Category struct {
	Bucket recipe.Bucket
	Value  string
}

type categoryEntry struct {
	Words  []string `toml:"words"`
	Bucket string   `toml:"bucket"`
	Value  string   `toml:"value"`
}

type document struct {
	Units             map[string]string `toml:"units"`
	Categories        []categoryEntry   `toml:"categories"`
	ParagraphStarters []string          `toml:"paragraph_starters"`
}

// Lexicon answers unit, category, and paragraph-starter lookups.
type Lexicon struct {
	unitsExact map[string]string
	unitsFold  map[string]string
	categories map[string]Category
	starters   map[string]struct{}
}

// Default returns the lexicon built from the embedded tables.
func Default() *Lexicon {
	lex := empty()
	if err := lex.merge(defaultTables); err != nil {
		panic(fmt.Sprintf("lexicon: embedded tables: %v", err))
	}
	return lex
}

// Load returns the embedded lexicon merged with the TOML file at path. Entries
// in the file override or extend the defaults. An empty path yields Default().
func Load(path string) (*Lexicon, error) {
	lex := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return lex, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	if err := lex.merge(data); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	return lex, nil
}

func empty() *Lexicon {
	return &Lexicon{
		unitsExact: make(map[string]string),
		unitsFold:  make(map[string]string),
		categories: make(map[string]Category),
		starters:   make(map[string]struct{}),
	}
}

func (l *Lexicon) merge(data []byte) error {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for from, to := range doc.Units {
		from = strings.TrimSpace(from)
		if from == "" {
			continue
		}
		l.unitsExact[from] = to
		fold := strings.ToLower(from)
		// Single letter abbreviations are case sensitive (T is tablespoon,
		// t is teaspoon), so they never enter the folded table.
		if len(from) > 1 {
			l.unitsFold[fold] = to
		}
	}
	for _, entry := range doc.Categories {
		bucket, ok := recipe.ParseBucket(entry.Bucket)
		if !ok {
			return fmt.Errorf("category %q: unknown bucket %q", entry.Value, entry.Bucket)
		}
		for _, word := range entry.Words {
			word = strings.ToLower(strings.TrimSpace(word))
			if word == "" {
				continue
			}
			l.categories[word] = Category{Bucket: bucket, Value: entry.Value}
		}
	}
	for _, word := range doc.ParagraphStarters {
		if word = strings.TrimSpace(word); word != "" {
			l.starters[strings.ToLower(word)] = struct{}{}
		}
	}
	return nil
}

// TranslateUnit maps a unit token (periods already removed) to its canonical
// spelling.
func (l *Lexicon) TranslateUnit(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	if to, ok := l.unitsExact[token]; ok {
		return to, true
	}
	to, ok := l.unitsFold[strings.ToLower(token)]
	return to, ok
}

// Categorize returns the category implied by a title word.
func (l *Lexicon) Categorize(word string) (Category, bool) {
	cat, ok := l.categories[strings.ToLower(strings.TrimSpace(word))]
	return cat, ok
}

// IsParagraphStarter reports whether word (trailing punctuation ignored)
// conventionally opens a new paragraph of directions.
func (l *Lexicon) IsParagraphStarter(word string) bool {
	word = strings.TrimRight(word, ".,;:!")
	_, ok := l.starters[strings.ToLower(word)]
	return ok
}

// UnitCount returns the number of unit spellings known to the lexicon.
func (l *Lexicon) UnitCount() int {
	return len(l.unitsExact)
}
