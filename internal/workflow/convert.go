package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"recipeflow/internal/catalog"
	"recipeflow/internal/config"
	"recipeflow/internal/dialect"
	"recipeflow/internal/digest"
	"recipeflow/internal/export"
	"recipeflow/internal/ingest"
	"recipeflow/internal/lexicon"
	"recipeflow/internal/logging"
	"recipeflow/internal/mealmaster"
	"recipeflow/internal/metrics"
	"recipeflow/internal/normalize"
	"recipeflow/internal/services"
	"recipeflow/internal/stages"
)

// Artifact file names written to the output directory after a run.
const (
	IndexFileName   = "index.yaml"
	CatalogFileName = "catalog.xlsx"
)

// Converter runs the full pipeline for one configuration.
type Converter struct {
	cfg      *config.Config
	pipeline *Pipeline
	catalog  *catalog.Catalog
	metrics  *metrics.Run
	logger   *slog.Logger
}

// NewDetector returns the boundary detector for every known dialect, with
// Meal-Master decoded through lex.
func NewDetector(lex *lexicon.Lexicon, width int) *dialect.Detector {
	return dialect.NewDetector(
		mealmaster.NewDecoder(lex, width),
		dialect.MasterCook(),
		dialect.RXF(),
	)
}

// NewConverter builds every stage from cfg. A digest or lexicon that cannot
// be loaded is a fatal configuration error.
func NewConverter(cfg *config.Config, logger *slog.Logger) (*Converter, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "build", "config is required", nil)
	}
	lex, err := lexicon.Load(cfg.Paths.LexiconPath)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "workflow", "load lexicon", cfg.Paths.LexiconPath, err)
	}
	newHash, err := digest.Factory(cfg.Decode.Digest)
	if err != nil {
		return nil, err
	}
	encoders, err := export.ForFormats(cfg.Export.Formats)
	if err != nil {
		return nil, err
	}

	normalizer, err := normalize.New(lex, newHash)
	if err != nil {
		return nil, err
	}

	run := metrics.NewRun()
	cat := catalog.New(normalize.ZeroID)
	set := StageSet{
		Importer: stages.NewImporter(logger),
		Splitter: stages.NewSplitter(NewDetector(lex, cfg.Decode.DirectionsWidth), cfg.Decode.KeepIncomplete, run, logger),
		Decoder:  stages.NewDecoder(normalizer, run, logger),
		Encoder:  stages.NewEncoder(export.NewWriter(cfg.Paths.OutputDir, encoders), cat, run, logger),
	}
	pipeline, err := NewPipeline(set, cfg.Pipeline, run, logger)
	if err != nil {
		return nil, err
	}
	return &Converter{
		cfg:      cfg,
		pipeline: pipeline,
		catalog:  cat,
		metrics:  run,
		logger:   logging.NewComponentLogger(logger, "workflow"),
	}, nil
}

// Metrics returns the run metrics.
func (c *Converter) Metrics() *metrics.Run {
	return c.metrics
}

// Catalog returns the recipes cataloged so far.
func (c *Converter) Catalog() *catalog.Catalog {
	return c.catalog
}

// Pipeline returns the underlying pipeline.
func (c *Converter) Pipeline() *Pipeline {
	return c.pipeline
}

// Convert discovers the documents under paths, runs them through the
// pipeline, then writes the catalog artifacts and the metrics textfile.
func (c *Converter) Convert(ctx context.Context, runID string, paths []string) (Summary, error) {
	ctx = services.WithRunID(ctx, runID)
	sources, err := ingest.Discover(paths)
	if err != nil {
		return Summary{RunID: runID}, err
	}
	summary, err := c.pipeline.Run(ctx, sources)
	summary.RunID = runID
	if err != nil {
		return summary, err
	}

	summary.Duplicates = c.catalog.Duplicates(c.cfg.Export.NearDuplicateThreshold)
	artifacts, err := c.writeArtifacts(runID, summary.Duplicates)
	summary.Artifacts = artifacts
	if err != nil {
		return summary, err
	}

	logger := logging.WithContext(ctx, c.logger)
	if n := len(summary.Duplicates.Exact) + len(summary.Duplicates.Near); n > 0 {
		logger.Info("duplicates found",
			logging.String(logging.FieldEventType, "duplicates_found"),
			logging.Int("exact_groups", len(summary.Duplicates.Exact)),
			logging.Int("near_pairs", len(summary.Duplicates.Near)),
		)
	}
	return summary, nil
}

func (c *Converter) writeArtifacts(runID string, report catalog.Report) ([]string, error) {
	var written []string
	entries := c.catalog.Entries()
	if c.cfg.Export.IndexYAML {
		path := filepath.Join(c.cfg.Paths.OutputDir, IndexFileName)
		index := catalog.Index{
			RunID:      runID,
			Generated:  time.Now().UTC(),
			Recipes:    entries,
			Duplicates: report,
		}
		if err := catalog.WriteYAML(path, index); err != nil {
			return written, fmt.Errorf("write index: %w", err)
		}
		written = append(written, path)
	}
	if c.cfg.Export.CatalogXLSX {
		path := filepath.Join(c.cfg.Paths.OutputDir, CatalogFileName)
		if err := catalog.WriteXLSX(path, entries, report); err != nil {
			return written, fmt.Errorf("write catalog: %w", err)
		}
		written = append(written, path)
	}
	if path := c.cfg.Metrics.TextfilePath; path != "" {
		if err := c.metrics.WriteTextfile(path); err != nil {
			return written, fmt.Errorf("write metrics: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}
