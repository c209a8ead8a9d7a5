package queue

import (
	"time"

	"github.com/google/uuid"

	"recipeflow/internal/dialect"
	"recipeflow/internal/ingest"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
)

// Status represents the lifecycle of a job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusImported   Status = "imported"
	StatusClassified Status = "classified"
	StatusDecoded    Status = "decoded"
	StatusEncoded    Status = "encoded"
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
)

// IsTerminal reports whether no further stage should touch the job.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusEncoded, StatusSkipped, StatusFailed:
		return true
	default:
		return false
	}
}

// Drop records a recipe that was found but not exported.
type Drop struct {
	StartLine int
	Format    recipe.Format
	Title     string
	Outcome   string
	Reason    string
}

// Job is one document moving through the pipeline.
type Job struct {
	ID      string
	Seq     int
	Source  ingest.Source
	Status  Status
	Lines   []string
	Chunks  []dialect.Chunk
	Recipes []*recipe.Record
	Drops   []Drop
	Outputs []string
	Err     error
	Created time.Time
}

// NewJob returns a pending job for src with a fresh correlation id.
func NewJob(seq int, src ingest.Source) *Job {
	return &Job{
		ID:      uuid.NewString(),
		Seq:     seq,
		Source:  src,
		Status:  StatusPending,
		Created: time.Now(),
	}
}

// Name returns the display name of the job's document.
func (j *Job) Name() string {
	return j.Source.Name()
}

// Fail marks the job failed with err.
func (j *Job) Fail(err error) {
	j.Status = StatusFailed
	j.Err = err
}

// Skip marks the job as finished early without error.
func (j *Job) Skip() {
	j.Status = StatusSkipped
}

// Drop records a recipe that will not be exported.
func (j *Job) Drop(chunk dialect.Chunk, title string, err error) {
	d := Drop{
		StartLine: chunk.StartLine,
		Title:     title,
		Outcome:   services.Outcome(err),
	}
	if chunk.Dialect != nil {
		d.Format = chunk.Dialect.Format()
	}
	if err != nil {
		d.Reason = err.Error()
	}
	j.Drops = append(j.Drops, d)
}

// Release drops the raw lines and chunks once they are no longer needed.
func (j *Job) Release() {
	j.Lines = nil
	j.Chunks = nil
}
