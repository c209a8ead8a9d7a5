package stages

import (
	"context"
	"log/slog"

	"recipeflow/internal/dialect"
	"recipeflow/internal/logging"
	"recipeflow/internal/metrics"
	"recipeflow/internal/queue"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

// Splitter classifies envelope lines and cuts a document into recipe chunks.
type Splitter struct {
	detector       *dialect.Detector
	keepIncomplete bool
	metrics        *metrics.Run
	logger         *slog.Logger
}

// NewSplitter returns the envelope stage handler. When keepIncomplete is
// false, a recipe cut off by the end of its document is dropped.
func NewSplitter(detector *dialect.Detector, keepIncomplete bool, run *metrics.Run, logger *slog.Logger) *Splitter {
	return &Splitter{
		detector:       detector,
		keepIncomplete: keepIncomplete,
		metrics:        run,
		logger:         logging.NewComponentLogger(logger, NameEnvelope),
	}
}

func (s *Splitter) Name() string { return NameEnvelope }

// Execute fills job.Chunks. A document without any recipe is skipped.
func (s *Splitter) Execute(ctx context.Context, job *queue.Job) error {
	if err := stage.RequireStatus(NameEnvelope, job, queue.StatusImported); err != nil {
		job.Fail(err)
		return nil
	}
	logger := logging.WithContext(ctx, s.logger)

	chunks := s.detector.Split(job.Lines)
	kept := chunks[:0]
	for _, chunk := range chunks {
		if chunk.End == dialect.EndOfDocument && !s.keepIncomplete {
			format := string(chunk.Dialect.Format())
			err := services.Wrap(services.ErrValidation, NameEnvelope, "split", "no end marker before end of document", nil)
			job.Drop(chunk, "", err)
			s.metrics.Recipe(format, metrics.ResultIncomplete)
			logging.WarnWithContext(logger, "incomplete recipe dropped", "recipe_incomplete",
				logging.String(logging.FieldDialect, format),
				logging.Int("start_line", chunk.StartLine),
				logging.String(logging.FieldImpact, "recipe skipped"),
				logging.String(logging.FieldErrorHint, "set decode.keep_incomplete to keep truncated recipes"),
			)
			continue
		}
		kept = append(kept, chunk)
	}
	job.Chunks = kept

	if len(kept) == 0 {
		logger.Debug("no recipes found", logging.String(logging.FieldEventType, "document_no_recipes"))
		job.Release()
		job.Skip()
		return nil
	}
	job.Status = queue.StatusClassified
	logger.Debug("document split",
		logging.String(logging.FieldEventType, "document_split"),
		logging.Int("chunks", len(kept)),
	)
	return nil
}

func (s *Splitter) HealthCheck(context.Context) stage.Health {
	if s.detector == nil || len(s.detector.Dialects()) == 0 {
		return stage.Unhealthy(NameEnvelope, "no dialects registered")
	}
	return stage.Healthy(NameEnvelope)
}
