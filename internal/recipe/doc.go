// Package recipe defines the normalized recipe record shared by every stage of
// the pipeline.
//
// A Record is created by a dialect decoder, enriched by the normalizer, and
// consumed by the export encoders. Scalar metadata follows a first writer wins
// rule: once a field such as Source or TimeCook is set, later values for the
// same field are kept as notes instead of overwriting it (see SetOnce).
package recipe
