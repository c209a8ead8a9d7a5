// Package fields holds the stateless text transforms that carve an ingredient
// line into amount, unit, ingredient, and preparation, plus the Directions
// word-wrap assembler.
//
// Each ingredient formatter takes the line and a cursor and returns the
// advanced cursor with the extracted field; a formatter that finds nothing
// returns the cursor it was given. Apply them in order: Amount, Unit,
// Ingredient, Preparation.
package fields
