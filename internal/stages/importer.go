package stages

import (
	"context"
	"log/slog"

	"recipeflow/internal/ingest"
	"recipeflow/internal/logging"
	"recipeflow/internal/queue"
	"recipeflow/internal/stage"
)

// Importer loads the text lines of a job's source.
type Importer struct {
	logger *slog.Logger
}

// NewImporter returns the import stage handler.
func NewImporter(logger *slog.Logger) *Importer {
	return &Importer{logger: logging.NewComponentLogger(logger, NameImport)}
}

func (i *Importer) Name() string { return NameImport }

// Execute reads the document. Unreadable documents fail the job; empty ones
// are skipped.
func (i *Importer) Execute(ctx context.Context, job *queue.Job) error {
	if err := stage.RequireStatus(NameImport, job, queue.StatusPending); err != nil {
		job.Fail(err)
		return nil
	}
	logger := logging.WithContext(ctx, i.logger)

	doc, err := ingest.Read(ctx, job.Source)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logging.WarnWithContext(logger, "document unreadable", "document_unreadable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the file permissions and encoding"),
		)
		job.Fail(err)
		return nil
	}
	job.Lines = doc.Lines
	if len(job.Lines) == 0 {
		logger.Debug("empty document", logging.String(logging.FieldEventType, "document_empty"))
		job.Skip()
		return nil
	}
	job.Status = queue.StatusImported
	logger.Debug("document imported",
		logging.String(logging.FieldEventType, "document_imported"),
		logging.Int("lines", len(job.Lines)),
		logging.Int64("bytes", job.Source.Size),
	)
	return nil
}

func (i *Importer) HealthCheck(context.Context) stage.Health {
	return stage.Healthy(NameImport)
}
