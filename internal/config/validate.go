package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateDecode(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePipeline() error {
	return ensurePositiveMap(map[string]int{
		"pipeline.import_workers":   c.Pipeline.ImportWorkers,
		"pipeline.envelope_workers": c.Pipeline.EnvelopeWorkers,
		"pipeline.decode_workers":   c.Pipeline.DecodeWorkers,
		"pipeline.encode_workers":   c.Pipeline.EncodeWorkers,
		"pipeline.queue_depth":      c.Pipeline.QueueDepth,
	})
}

func (c *Config) validateDecode() error {
	if c.Decode.DirectionsWidth < minDirectionsWidth || c.Decode.DirectionsWidth > maxDirectionsWidth {
		return fmt.Errorf("decode.directions_width must be between %d and %d", minDirectionsWidth, maxDirectionsWidth)
	}
	if !slices.Contains(Digests, c.Decode.Digest) {
		return fmt.Errorf("decode.digest: unsupported value %q (valid: %v)", c.Decode.Digest, Digests)
	}
	return nil
}

func (c *Config) validateExport() error {
	for _, f := range c.Export.Formats {
		if !slices.Contains(ExportFormats, f) {
			return fmt.Errorf("export.formats: unsupported value %q (valid: %v)", f, ExportFormats)
		}
	}
	if c.Export.NearDuplicateThreshold < 0 || c.Export.NearDuplicateThreshold > 1 {
		return errors.New("export.near_duplicate_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if values[key] <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
