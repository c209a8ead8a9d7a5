package normalize

import (
	"hash"

	"recipeflow/internal/lexicon"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// Categorizer files a title word under a category bucket.
type Categorizer interface {
	Categorize(word string) (lexicon.Category, bool)
}

// Normalizer applies the post-decode passes. It only reads its lookups and
// is safe for concurrent use.
type Normalizer struct {
	categories Categorizer
	newHash    func() hash.Hash
}

// New returns a Normalizer. newHash supplies the digest for Recipe-IDs and
// must not be nil.
func New(categories Categorizer, newHash func() hash.Hash) (*Normalizer, error) {
	if newHash == nil {
		return nil, services.Wrap(services.ErrDigestUnavailable, "normalize", "new", "no digest configured", nil)
	}
	return &Normalizer{categories: categories, newHash: newHash}, nil
}

// Apply runs every pass over rec in order.
func (n *Normalizer) Apply(rec *recipe.Record) {
	if rec == nil {
		return
	}
	CategorizeTitle(rec, n.categories)
	rec.Directions = CleanupLines(rec.Directions)
	ExtractTags(rec)
	ExtractNotes(rec)
	rec.Directions = tidy(rec.Directions)
	rec.ID = RecipeID(rec.Ingredients, n.newHash)
}

// tidy drops leading and trailing blank lines and collapses runs of blank
// paragraph separators left behind by removed lines.
func tidy(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
