// Package services defines shared utilities consumed by the pipeline stages.
//
// Key responsibilities:
//   - Context helpers that stamp job IDs, document paths, and stage names for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures as
//     per-document (log and drop the job) or fatal (stop the run).
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
