// Package workflow moves documents through the four recipe stages.
//
// A Pipeline owns one queue.Router per stage. Each router has one bounded
// lane per configured worker; a feeder dispatches a queue.Job per source
// document to the import router, and every worker hands a finished job to
// the least loaded lane of the next stage. Jobs that reach a terminal status
// (skipped, failed, or encoded) leave the pipeline and are collected into a
// Summary ordered by their position in the input.
//
// Worker pools run under one errgroup: a fatal stage error cancels every
// other worker. Per-document failures never stop a run.
//
// Converter wires the pipeline from configuration, then writes the run
// catalog and metrics once every document has been processed.
package workflow
