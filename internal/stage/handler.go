package stage

import (
	"context"

	"recipeflow/internal/queue"
)

// Handler describes the contract the workflow pipeline needs from each stage.
//
// Execute advances the job. A per-document problem is recorded on the job
// (job.Fail or job.Skip) and Execute returns nil; a returned error is fatal
// and stops the whole run.
type Handler interface {
	Name() string
	Execute(context.Context, *queue.Job) error
	HealthCheck(context.Context) Health
}

// Health reports whether a stage can run.
type Health struct {
	Name   string
	Ready  bool
	Detail string
}

// Healthy returns a ready Health for the named stage.
func Healthy(name string) Health {
	return Health{Name: name, Ready: true}
}

// Unhealthy returns a not-ready Health explaining why.
func Unhealthy(name, detail string) Health {
	return Health{Name: name, Detail: detail}
}

func (h Health) String() string {
	if h.Ready {
		return h.Name + ": ready"
	}
	return h.Name + ": " + h.Detail
}
