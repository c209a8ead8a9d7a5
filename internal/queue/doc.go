// Package queue holds the in-flight jobs of a conversion run and the bounded
// per-worker lanes that carry them between stages.
//
// A Job is one input document. Stages advance its Status as it moves from
// import to encode; a job that fails or has nothing left to do is marked
// terminal and leaves the pipeline early. Jobs live only for the run; nothing
// is persisted.
//
// Each stage worker owns one Lane. A Router hands every job to the lane with
// the fewest queued or running jobs, so a slow document on one worker does not
// stall the documents queued behind it on another.
package queue
