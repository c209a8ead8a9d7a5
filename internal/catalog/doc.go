// Package catalog records every exported recipe of a run and reports
// duplicates.
//
// Exact duplicates share a Recipe-ID. Near duplicates have different IDs but
// ingredient lists whose TF-IDF weighted fingerprints reach the configured
// cosine similarity. The catalog is written as an xlsx workbook and a YAML
// index.
package catalog
