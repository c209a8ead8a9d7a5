// Package metrics counts what a conversion run did.
//
// Each run owns a Registry so concurrent runs (and tests) never share
// collectors. The registry can be written as a Prometheus textfile for the
// node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	ResultOK          = "ok"
	ResultUnsupported = "unsupported"
	ResultRejected    = "rejected"
	ResultFailed      = "failed"
	ResultIncomplete  = "incomplete"
)

// Run holds the collectors of one conversion run.
type Run struct {
	registry *prometheus.Registry

	documents    *prometheus.CounterVec
	recipes      *prometheus.CounterVec
	stageLatency *prometheus.HistogramVec
	queueDepth   *prometheus.GaugeVec
	files        prometheus.Counter
}

// NewRun returns a Run with freshly registered collectors.
func NewRun() *Run {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Run{
		registry: reg,
		documents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeflow_documents_total",
				Help: "Documents leaving each pipeline stage, by result",
			},
			[]string{"stage", "result"},
		),
		recipes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipeflow_recipes_total",
				Help: "Recipes found, by dialect and result",
			},
			[]string{"dialect", "result"},
		),
		stageLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipeflow_stage_duration_seconds",
				Help:    "Time spent by a stage on one document",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"stage"},
		),
		queueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "recipeflow_stage_queue_depth",
				Help: "Jobs waiting in the queues of a stage",
			},
			[]string{"stage"},
		),
		files: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipeflow_export_files_total",
				Help: "Export files written",
			},
		),
	}
}

// Registry exposes the underlying registry.
func (r *Run) Registry() *prometheus.Registry {
	return r.registry
}

// Document counts a document leaving stage with result.
func (r *Run) Document(stage, result string) {
	r.documents.WithLabelValues(stage, result).Inc()
}

// Recipe counts a recipe of dialect with result.
func (r *Run) Recipe(dialect, result string) {
	r.recipes.WithLabelValues(dialect, result).Inc()
}

// ObserveStage records how long stage took for one document.
func (r *Run) ObserveStage(stage string, d time.Duration) {
	r.stageLatency.WithLabelValues(stage).Observe(d.Seconds())
}

// QueueDepth adjusts the queued job gauge of stage by delta.
func (r *Run) QueueDepth(stage string, delta float64) {
	r.queueDepth.WithLabelValues(stage).Add(delta)
}

// FilesWritten counts n export files.
func (r *Run) FilesWritten(n int) {
	r.files.Add(float64(n))
}

// Counter returns the current value of a labeled counter family member, or 0.
// Labels are matched by name.
func (r *Run) Counter(name string, labels map[string]string) float64 {
	families, err := r.registry.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if matches(m.GetLabel(), labels) && m.GetCounter() != nil {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (r *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
