package config

import (
	"fmt"

	"github.com/deanrtaylor1/tagextractor/logger"
	"github.com/deanrtaylor1/tagextractor/source"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := source.ValidateEncoding(c.Source.Encoding); err != nil {
		return fmt.Errorf("source.encoding: %w", err)
	}
	if err := source.ValidateHTMLMode(c.Source.HTML); err != nil {
		return fmt.Errorf("source.html: %w", err)
	}
	if c.Counter.MaxLineBytes <= 0 {
		return fmt.Errorf("counter.max_line_bytes must be positive, got %d", c.Counter.MaxLineBytes)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("output.top must not be negative, got %d", c.Output.Top)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unknown mode %q", c.Output.Color)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
