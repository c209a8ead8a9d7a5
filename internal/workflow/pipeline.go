package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"recipeflow/internal/config"
	"recipeflow/internal/ingest"
	"recipeflow/internal/logging"
	"recipeflow/internal/metrics"
	"recipeflow/internal/queue"
	"recipeflow/internal/stage"
	"recipeflow/internal/stageexec"
)

// StageSet bundles the concrete handlers the pipeline orchestrates.
type StageSet struct {
	Importer stage.Handler
	Splitter stage.Handler
	Decoder  stage.Handler
	Encoder  stage.Handler
}

type pipelineStage struct {
	handler stage.Handler
	workers int
}

// Pipeline runs jobs through the stages with a bounded worker pool per stage.
type Pipeline struct {
	stages  []pipelineStage
	depth   int
	metrics *metrics.Run
	logger  *slog.Logger
}

// NewPipeline sizes each stage from the pipeline configuration.
func NewPipeline(set StageSet, cfg config.Pipeline, run *metrics.Run, logger *slog.Logger) (*Pipeline, error) {
	stages := []pipelineStage{
		{handler: set.Importer, workers: cfg.ImportWorkers},
		{handler: set.Splitter, workers: cfg.EnvelopeWorkers},
		{handler: set.Decoder, workers: cfg.DecodeWorkers},
		{handler: set.Encoder, workers: cfg.EncodeWorkers},
	}
	for i, s := range stages {
		if s.handler == nil {
			return nil, fmt.Errorf("workflow: stage %d has no handler", i)
		}
	}
	if run == nil {
		run = metrics.NewRun()
	}
	return &Pipeline{
		stages:  stages,
		depth:   cfg.QueueDepth,
		metrics: run,
		logger:  logging.NewComponentLogger(logger, "workflow"),
	}, nil
}

// Run processes sources and returns one result per document that left the
// pipeline. The error is non-nil when a stage reported a fatal error, a
// health check failed, or ctx was cancelled; the summary then holds the
// documents finished so far.
func (p *Pipeline) Run(ctx context.Context, sources []ingest.Source) (Summary, error) {
	summary := Summary{Started: time.Now()}
	if err := p.requireHealthy(ctx); err != nil {
		return summary, err
	}
	logger := logging.WithContext(ctx, p.logger)
	logger.Info("run started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.Int("documents", len(sources)),
	)

	routers := make([]*queue.Router, len(p.stages))
	for i, s := range p.stages {
		routers[i] = queue.NewRouter(s.workers, p.depth)
	}
	// Every job lands here exactly once, so sends never block.
	results := make(chan *queue.Job, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer routers[0].Close()
		for seq, src := range sources {
			if err := p.forward(gctx, 0, queue.NewJob(seq, src), routers, results); err != nil {
				return err
			}
		}
		return nil
	})
	for i := range p.stages {
		var wg sync.WaitGroup
		for _, lane := range routers[i].Lanes() {
			wg.Add(1)
			g.Go(func() error {
				defer wg.Done()
				return p.work(gctx, i, lane, routers, results)
			})
		}
		if i+1 < len(p.stages) {
			next := routers[i+1]
			g.Go(func() error {
				wg.Wait()
				next.Close()
				return nil
			})
		}
	}
	err := g.Wait()
	close(results)

	for job := range results {
		summary.Documents = append(summary.Documents, resultFor(job))
	}
	sort.Slice(summary.Documents, func(i, j int) bool {
		return summary.Documents[i].Seq < summary.Documents[j].Seq
	})
	summary.Finished = time.Now()

	if err != nil {
		logging.ErrorWithContext(logger, "run aborted", "run_aborted",
			logging.Error(err),
			logging.Int("finished_documents", len(summary.Documents)),
		)
		return summary, err
	}
	logger.Info("run completed",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("documents", len(summary.Documents)),
		logging.Int("recipes", summary.Recipes()),
		logging.Int("dropped", summary.Dropped()),
		logging.Int("failed", summary.Count(queue.StatusFailed)),
		logging.Duration("elapsed", summary.Finished.Sub(summary.Started)),
	)
	return summary, nil
}

func (p *Pipeline) work(ctx context.Context, idx int, lane *queue.Lane, routers []*queue.Router, results chan<- *queue.Job) error {
	name := p.stages[idx].handler.Name()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-lane.Jobs():
			if !ok {
				return nil
			}
			p.metrics.QueueDepth(name, -1)
			err := stageexec.Run(ctx, stageexec.Options{
				Logger:  p.logger,
				Metrics: p.metrics,
				Handler: p.stages[idx].handler,
				Job:     job,
			})
			lane.Done()
			if err != nil {
				return err
			}
			if err := p.forward(ctx, idx+1, job, routers, results); err != nil {
				return err
			}
		}
	}
}

// forward hands job to the stage at idx, or to results once it is terminal
// or past the last stage.
func (p *Pipeline) forward(ctx context.Context, idx int, job *queue.Job, routers []*queue.Router, results chan<- *queue.Job) error {
	if job.Status.IsTerminal() || idx >= len(p.stages) {
		results <- job
		return nil
	}
	p.metrics.QueueDepth(p.stages[idx].handler.Name(), 1)
	if err := routers[idx].Dispatch(ctx, job); err != nil {
		p.metrics.QueueDepth(p.stages[idx].handler.Name(), -1)
		return err
	}
	return nil
}
