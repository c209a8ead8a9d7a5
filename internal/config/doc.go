// Package config loads, normalizes, and validates recipeflow configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RECIPEFLOW_OUTPUT_DIR. The Config type centralizes every knob the pipeline
// and CLI need: worker pool sizes, decode options, export formats, logging,
// and metrics output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
