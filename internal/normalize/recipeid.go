package normalize

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"recipeflow/internal/recipe"
)

// idBytes is how much of each digest is folded into the Recipe-ID.
const idBytes = 20

// ZeroID is the Recipe-ID of a recipe without ingredients.
var ZeroID = strings.Repeat("0", 2*idBytes+4)

// RecipeID fingerprints an ingredient list. Each ingredient's amount, unit and
// text are fed to a running digest; after every ingredient the first 20 bytes
// of the digest so far are XORed into an accumulator. The result is the
// accumulator in upper-case hex followed by the ingredient count in four
// digits. The same list in the same order always yields the same ID.
// RecipeID panics when newHash is nil.
func RecipeID(ingredients []recipe.AUIP, newHash func() hash.Hash) string {
	if newHash == nil {
		panic("normalize: RecipeID called without a digest")
	}
	if len(ingredients) == 0 {
		return ZeroID
	}
	h := newHash()
	var acc [idBytes]byte
	sum := make([]byte, 0, h.Size())
	for _, a := range ingredients {
		h.Write([]byte(a.Amount))
		h.Write([]byte(a.Unit))
		h.Write([]byte(a.Ingredient))
		sum = h.Sum(sum[:0])
		for i := 0; i < idBytes && i < len(sum); i++ {
			acc[i] ^= sum[i]
		}
	}
	return strings.ToUpper(hex.EncodeToString(acc[:])) + fmt.Sprintf("%04d", len(ingredients)%10000)
}
