package normalize

import (
	"strings"
	"unicode"

	"recipeflow/internal/recipe"
)

// CategorizeTitle files every title word known to the lookup into its
// category bucket, skipping values the bucket already holds.
func CategorizeTitle(rec *recipe.Record, lookup Categorizer) {
	if lookup == nil {
		return
	}
	words := strings.FieldsFunc(rec.Name, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/' || r == '(' || r == ')' || r == '&'
	})
	for _, word := range words {
		word = strings.Trim(word, `.!?:;"'`)
		cat, ok := lookup.Categorize(word)
		if !ok || rec.HasCategory(cat.Bucket, cat.Value) {
			continue
		}
		rec.AddCategory(cat.Bucket, cat.Value)
	}
}
