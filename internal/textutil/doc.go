// Package textutil holds small text helpers shared across the pipeline:
// recipe title casing, ingredient fingerprints for near-duplicate detection,
// and file name sanitizing for export paths.
//
// Fingerprints are term-frequency vectors over lowercase alphanumeric tokens
// of at least three characters. Measurement words ("cup", "tbsp") and common
// filler are dropped so two recipes compare on what goes into them rather than
// how it is measured.
package textutil
