package stageexec

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"recipeflow/internal/logging"
	"recipeflow/internal/metrics"
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

// Options controls one stage execution.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Run
	Handler stage.Handler
	Job     *queue.Job
}

// Run executes a stage against one job and records the outcome. The returned
// error is non-nil only when the run must stop: a fatal handler error or
// cancellation. Per-document failures stay on the job.
func Run(ctx context.Context, opts Options) error {
	if opts.Handler == nil {
		return fmt.Errorf("stage handler unavailable")
	}
	if opts.Job == nil {
		return fmt.Errorf("job is required")
	}
	name := opts.Handler.Name()
	job := opts.Job

	stageCtx := services.WithStage(ctx, name)
	stageCtx = services.WithJobID(stageCtx, job.ID)
	stageCtx = services.WithDocument(stageCtx, job.Name())
	stageLogger := logging.WithContext(stageCtx, opts.Logger)

	stageLogger.Debug(
		"stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String("status", string(job.Status)),
	)

	start := time.Now()
	err := opts.Handler.Execute(stageCtx, job)
	elapsed := time.Since(start)
	if opts.Metrics != nil {
		opts.Metrics.ObserveStage(name, elapsed)
	}
	if err != nil {
		if ctx.Err() == nil {
			logging.ErrorWithContext(stageLogger, "stage aborted run", "stage_fatal",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "fix the configuration and rerun"),
			)
		}
		return err
	}

	result := resultLabel(job)
	if opts.Metrics != nil {
		opts.Metrics.Document(name, result)
	}
	if job.Status == queue.StatusFailed {
		stageLogger.Warn(
			"stage failed",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("outcome", services.Outcome(job.Err)),
			logging.Error(job.Err),
			logging.String(logging.FieldImpact, "document skipped"),
		)
		return nil
	}
	stageLogger.Debug(
		"stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.String("next_status", string(job.Status)),
		logging.Duration("elapsed", elapsed),
	)
	return nil
}

func resultLabel(job *queue.Job) string {
	switch job.Status {
	case queue.StatusFailed:
		return services.Outcome(job.Err)
	case queue.StatusSkipped:
		return "skipped"
	default:
		return metrics.ResultOK
	}
}
