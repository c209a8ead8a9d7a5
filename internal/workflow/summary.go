package workflow

import (
	"time"

	"recipeflow/internal/catalog"
	"recipeflow/internal/queue"
)

// DocumentResult is what happened to one input document.
type DocumentResult struct {
	Seq      int
	Document string
	Size     int64
	Status   queue.Status
	Recipes  int
	Drops    []queue.Drop
	Outputs  []string
	Err      error
}

// Summary describes a finished run.
type Summary struct {
	RunID      string
	Started    time.Time
	Finished   time.Time
	Documents  []DocumentResult
	Duplicates catalog.Report
	Artifacts  []string
}

func resultFor(job *queue.Job) DocumentResult {
	return DocumentResult{
		Seq:      job.Seq,
		Document: job.Name(),
		Size:     job.Source.Size,
		Status:   job.Status,
		Recipes:  len(job.Recipes),
		Drops:    job.Drops,
		Outputs:  job.Outputs,
		Err:      job.Err,
	}
}

// Count returns the number of documents that ended in status.
func (s Summary) Count(status queue.Status) int {
	n := 0
	for _, d := range s.Documents {
		if d.Status == status {
			n++
		}
	}
	return n
}

// Recipes returns the number of exported recipes.
func (s Summary) Recipes() int {
	n := 0
	for _, d := range s.Documents {
		if d.Status == queue.StatusEncoded {
			n += d.Recipes
		}
	}
	return n
}

// Dropped returns the number of recipes found but not exported.
func (s Summary) Dropped() int {
	n := 0
	for _, d := range s.Documents {
		n += len(d.Drops)
	}
	return n
}

// Files returns the number of export files written.
func (s Summary) Files() int {
	n := 0
	for _, d := range s.Documents {
		n += len(d.Outputs)
	}
	return n
}

// Bytes returns the total size of the input documents.
func (s Summary) Bytes() int64 {
	var n int64
	for _, d := range s.Documents {
		n += d.Size
	}
	return n
}
