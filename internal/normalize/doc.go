// Package normalize mines decoded recipes for data the dialect decoders leave
// in free text.
//
// A Normalizer runs five passes over a record: title words are filed into
// category buckets, sloppy tag spellings in the directions are rewritten to
// canonical `Tag:` form, quoted tag values are moved into record fields,
// `Notes:` text is moved into the notes, and finally the Recipe-ID is computed
// from the ingredient list.
//
// Every pass works on copies of the direction lines and returns new strings;
// nothing is spliced in place.
package normalize
