// Package lexicon holds the read-only lookup tables used while decoding:
// unit-of-measure translations, title words that imply a category, and the
// words that open a new paragraph in directions text.
//
// Tables are loaded once at startup from an embedded TOML document, optionally
// merged with a user override file, and never mutated afterwards, so a single
// Lexicon is safe to share between concurrently running decoders.
package lexicon
