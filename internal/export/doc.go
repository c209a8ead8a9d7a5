// Package export serializes decoded recipes.
//
// An Encoder appends the lines of one recipe to a Sink. Encoders that wrap a
// whole document (XML needs a root element) also implement Framer. Writer
// runs the configured encoders over all recipes of one document and writes
// one file per format under <output_dir>/<format>/.
package export
