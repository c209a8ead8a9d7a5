// Package ingest enumerates input documents and reads them as text lines.
//
// Inputs may be files, directories (walked recursively, dot entries skipped)
// or .zip archives, whose members are read in archive order. Bytes that are
// not valid UTF-8 are decoded as Windows-1252, the code page most recipe
// archives were written in.
package ingest
