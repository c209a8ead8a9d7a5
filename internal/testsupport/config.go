package testsupport

import (
	"path/filepath"
	"testing"

	"recipeflow/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "export")
	cfgVal.Paths.LogDir = ""
	cfgVal.Paths.LexiconPath = ""
	cfgVal.Metrics.TextfilePath = ""
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithFormats selects the export formats.
func WithFormats(formats ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Export.Formats = formats
	}
}

// WithWorkers sets every stage's worker count and the lane depth.
func WithWorkers(workers, depth int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Pipeline.ImportWorkers = workers
		b.cfg.Pipeline.EnvelopeWorkers = workers
		b.cfg.Pipeline.DecodeWorkers = workers
		b.cfg.Pipeline.EncodeWorkers = workers
		b.cfg.Pipeline.QueueDepth = depth
	}
}

// WithKeepIncomplete toggles decoding of recipes cut off by end of document.
func WithKeepIncomplete(keep bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Decode.KeepIncomplete = keep
	}
}

// WithDigest selects the Recipe-ID digest.
func WithDigest(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Decode.Digest = name
	}
}

// WithMetricsTextfile writes run metrics under the base directory.
func WithMetricsTextfile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metrics.TextfilePath = filepath.Join(b.baseDir, "metrics", "recipeflow.prom")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
