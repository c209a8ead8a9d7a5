// Package stageexec runs one stage handler against one job, stamping the
// stage, job, and document into the logger and recording latency and
// per-stage results in the run metrics.
package stageexec
