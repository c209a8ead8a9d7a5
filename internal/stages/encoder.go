package stages

import (
	"context"
	"log/slog"

	"recipeflow/internal/catalog"
	"recipeflow/internal/export"
	"recipeflow/internal/logging"
	"recipeflow/internal/metrics"
	"recipeflow/internal/preflight"
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

// Encoder writes a job's recipes and records them in the run catalog.
type Encoder struct {
	writer  *export.Writer
	catalog *catalog.Catalog
	metrics *metrics.Run
	logger  *slog.Logger
}

// NewEncoder returns the encode stage handler. A nil catalog disables
// cataloging.
func NewEncoder(writer *export.Writer, cat *catalog.Catalog, run *metrics.Run, logger *slog.Logger) *Encoder {
	return &Encoder{
		writer:  writer,
		catalog: cat,
		metrics: run,
		logger:  logging.NewComponentLogger(logger, NameEncode),
	}
}

func (e *Encoder) Name() string { return NameEncode }

// Execute writes one file per configured format.
func (e *Encoder) Execute(ctx context.Context, job *queue.Job) error {
	if err := stage.RequireStatus(NameEncode, job, queue.StatusDecoded); err != nil {
		job.Fail(err)
		return nil
	}
	logger := logging.WithContext(ctx, e.logger)

	paths, err := e.writer.WriteDocument(job.Name(), job.Recipes)
	e.metrics.FilesWritten(len(paths))
	job.Outputs = paths
	if err != nil {
		wrapped := services.Wrap(services.ErrTransient, NameEncode, "write document", job.Name(), err)
		logging.ErrorWithContext(logger, "export failed", "export_failed",
			logging.Error(wrapped),
			logging.String(logging.FieldErrorHint, "check free space and permissions of the output directory"),
		)
		job.Fail(wrapped)
		return nil
	}
	if e.catalog != nil {
		for _, rec := range job.Recipes {
			e.catalog.Add(job.Name(), rec)
		}
	}
	job.Status = queue.StatusEncoded
	logger.Info("document exported",
		logging.String(logging.FieldEventType, "document_exported"),
		logging.Int("recipes", len(job.Recipes)),
		logging.Int("files", len(paths)),
	)
	return nil
}

// HealthCheck verifies the output directory is writable.
func (e *Encoder) HealthCheck(context.Context) stage.Health {
	if e.writer == nil {
		return stage.Unhealthy(NameEncode, "writer not configured")
	}
	if len(e.writer.Encoders()) == 0 {
		return stage.Unhealthy(NameEncode, "no export formats selected")
	}
	result := preflight.CheckDirectoryAccess("Output directory", e.writer.Root())
	if !result.Passed {
		return stage.Unhealthy(NameEncode, result.Detail)
	}
	return stage.Healthy(NameEncode)
}
