package config

const (
	defaultOutputDir              = "~/.local/share/recipeflow/export"
	defaultImportWorkers          = 1
	defaultEnvelopeWorkers        = 2
	defaultDecodeWorkers          = 4
	defaultEncodeWorkers          = 2
	defaultQueueDepth             = 8
	defaultDirectionsWidth        = 72
	defaultDigest                 = "sha256"
	defaultNearDuplicateThreshold = 0.92
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"

	minDirectionsWidth = 20
	maxDirectionsWidth = 200
)

// ExportFormats lists every export format name the encoders understand.
var ExportFormats = []string{"text", "rxf", "xml"}

// Digests lists the accepted Recipe-ID digest names.
var Digests = []string{"sha256", "sha512", "sha3-256", "sha3-512", "blake2b-256", "blake2b-512"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Pipeline: Pipeline{
			ImportWorkers:   defaultImportWorkers,
			EnvelopeWorkers: defaultEnvelopeWorkers,
			DecodeWorkers:   defaultDecodeWorkers,
			EncodeWorkers:   defaultEncodeWorkers,
			QueueDepth:      defaultQueueDepth,
		},
		Decode: Decode{
			DirectionsWidth: defaultDirectionsWidth,
			Digest:          defaultDigest,
			KeepIncomplete:  true,
		},
		Export: Export{
			Formats:                []string{"text", "rxf", "xml"},
			CatalogXLSX:            true,
			IndexYAML:              true,
			NearDuplicateThreshold: defaultNearDuplicateThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
