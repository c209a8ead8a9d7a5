package testsupport

// BreadPudding is a complete Meal-Master recipe with an end marker.
const BreadPudding = `MMMMM----- Recipe via Meal-Master (tm) v8.05

      Title: zesty bread pudding
 Categories: Dessert, Breads
      Yield: 6 servings

      4 c  Day-old bread cubes
      2 c  Milk
    1/2 c  Sugar
      2    Eggs, beaten
      1 ts Vanilla extract

  Preheat oven to 350 degrees. Pour the milk over the bread cubes.
  Bake 45 minutes. From: "Jane's Kitchen"

MMMMM`

// ChiliSoup is a Meal-Master recipe using the dashed banner form.
const ChiliSoup = `---------- Recipe via Meal-Master (tm) v8.02

      Title: Chili Soup
 Categories: Soups
   Servings: 4

      1 lb Ground beef
      1    Onion, chopped
      2 c  Kidney beans

  Brown the beef with the onion. Add the beans and simmer.

-----`

// MasterCookRecipe is a recipe in a dialect without a decoder.
const MasterCookRecipe = `*  Exported from  MasterCook  *

                             Plain Rice

Amount  Measure       Ingredient -- Preparation Method
--------  ------------  --------------------------------
   1      cup           rice

- - - - - - - - - - - - - - - - - - -`

// TruncatedRecipe has a banner but the document ends before any end marker.
const TruncatedRecipe = `MMMMM----- Recipe via Meal-Master (tm) v8.05

      Title: Half a Recipe
 Categories: Misc
      Yield: 1 batch

      1 c  Flour`

// Digest wraps recipes in a mailing-list digest message.
func Digest(recipes ...string) string {
	out := "From cook@example.com Mon Jan  1 00:00:00 1996\n" +
		"From: cook@example.com\n" +
		"Subject: Recipes of the week\n" +
		"Newsgroups: rec.food.recipes\n" +
		"\n"
	for _, r := range recipes {
		out += r + "\n\n"
	}
	return out
}
