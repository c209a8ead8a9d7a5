package stages

import (
	"context"
	"errors"
	"log/slog"

	"recipeflow/internal/dialect"
	"recipeflow/internal/logging"
	"recipeflow/internal/metrics"
	"recipeflow/internal/normalize"
	"recipeflow/internal/queue"
	"recipeflow/internal/recipe"
	"recipeflow/internal/services"
	"recipeflow/internal/stage"
)

// Decoder decodes and normalizes every chunk of a job.
type Decoder struct {
	normalizer *normalize.Normalizer
	metrics    *metrics.Run
	logger     *slog.Logger
}

// NewDecoder returns the decode stage handler.
func NewDecoder(normalizer *normalize.Normalizer, run *metrics.Run, logger *slog.Logger) *Decoder {
	return &Decoder{
		normalizer: normalizer,
		metrics:    run,
		logger:     logging.NewComponentLogger(logger, NameDecode),
	}
}

func (d *Decoder) Name() string { return NameDecode }

// Execute decodes the chunks in document order. Chunks that cannot be
// decoded are dropped with a warning; only a fatal error aborts the run.
// Cancellation is checked between recipes, never inside one.
func (d *Decoder) Execute(ctx context.Context, job *queue.Job) error {
	if err := stage.RequireStatus(NameDecode, job, queue.StatusClassified); err != nil {
		job.Fail(err)
		return nil
	}
	logger := logging.WithContext(ctx, d.logger)

	for _, chunk := range job.Chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		format := string(chunk.Dialect.Format())
		rec, err := chunk.Dialect.Decode(chunk.Lines)
		if err != nil {
			if services.IsFatal(err) {
				return err
			}
			job.Drop(chunk, "", err)
			d.metrics.Recipe(format, services.Outcome(err))
			msg, event := "recipe dropped", "recipe_rejected"
			if errors.Is(err, services.ErrUnsupportedDialect) {
				msg, event = "unsupported recipe dialect", "dialect_unsupported"
			}
			logging.WarnWithContext(logger, msg, event,
				logging.String(logging.FieldDialect, format),
				logging.Int("start_line", chunk.StartLine),
				logging.Error(err),
				logging.String(logging.FieldImpact, "recipe skipped"),
			)
			continue
		}
		d.normalizer.Apply(rec)
		rec.Provenance = provenance(job, chunk)
		job.Recipes = append(job.Recipes, rec)
		d.metrics.Recipe(format, metrics.ResultOK)
		logger.Debug("recipe decoded",
			logging.String(logging.FieldEventType, "recipe_decoded"),
			logging.String(logging.FieldDialect, format),
			logging.String(logging.FieldRecipe, rec.Name),
			logging.Int("ingredients", len(rec.Ingredients)),
			logging.String("recipe_id", rec.ID),
			logging.Bool("end_marker_seen", rec.Provenance.EndMarkerSeen),
		)
	}
	job.Release()

	if len(job.Recipes) == 0 {
		job.Skip()
		return nil
	}
	job.Status = queue.StatusDecoded
	return nil
}

func (d *Decoder) HealthCheck(context.Context) stage.Health {
	if d.normalizer == nil {
		return stage.Unhealthy(NameDecode, "normalizer not configured")
	}
	return stage.Healthy(NameDecode)
}

func provenance(job *queue.Job, chunk dialect.Chunk) recipe.Provenance {
	return recipe.Provenance{
		Path:          job.Source.Path,
		Size:          job.Source.Size,
		ModTime:       job.Source.ModTime,
		Member:        job.Source.Member,
		Group:         chunk.Message.Group,
		Author:        chunk.Message.Author,
		Subject:       chunk.Message.Subject,
		Date:          chunk.Message.Date,
		StartLine:     chunk.StartLine,
		EndMarkerSeen: chunk.End == dialect.EndMarker,
	}
}
