package stage

import (
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
)

// RequireStatus checks that job is in the status stage expects before it runs.
// On mismatch it returns a services.ErrValidation suitable for job.Fail.
func RequireStatus(stage string, job *queue.Job, want queue.Status) error {
	if job.Status == want {
		return nil
	}
	return services.Wrap(
		services.ErrValidation, stage, "check status",
		"job is "+string(job.Status)+", expected "+string(want), nil)
}
