// Package dialect recognizes where recipes start and end inside a document.
//
// Each source dialect implements the Dialect capability: start and end marker
// tests plus a decoder for the lines in between. The Detector tries dialects
// in a fixed priority order and Split walks a whole document, cutting it into
// per-recipe chunks while the envelope classifier filters e-mail noise.
//
// Only Meal-Master has a real decoder (package mealmaster). MasterCook and RXF
// banners are recognized so their chunks can be reported as unsupported.
package dialect
