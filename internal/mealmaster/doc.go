// Package mealmaster decodes Meal-Master recipes.
//
// A Parser walks the body of one recipe through five states: Title,
// Categories, Yield, Ingredients and Directions. A line that ends a state
// without belonging to it is offered again to the next state in the same
// pass, so nothing between the start and end markers is lost. Ingredient
// lines are split with the field formatters; direction lines are re-wrapped
// by a fields.Directions that lives and dies with the Parser.
//
// Decoder adapts the Parser to the dialect.Dialect capability so the detector
// and workflow can treat Meal-Master like any other source format.
package mealmaster
