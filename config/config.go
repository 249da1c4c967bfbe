package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/deanrtaylor1/tagextractor/frequency"
	"github.com/deanrtaylor1/tagextractor/logger"
	"github.com/deanrtaylor1/tagextractor/source"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultPath is looked up in the working directory when no path is given
const DefaultPath = "tagextractor.toml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Source contains how input files are decoded.
type Source struct {
	Encoding string `toml:"encoding"`
	HTML     string `toml:"html"`
}

// Counter contains limits of the frequency counter.
type Counter struct {
	MaxLineBytes int `toml:"max_line_bytes"`
}

// Output contains how the report is presented on the terminal.
type Output struct {
	Table bool   `toml:"table"`
	Top   int    `toml:"top"`
	Color string `toml:"color"`
}

// Log contains logging configuration.
type Log struct {
	Level string `toml:"level"`
}

// Config is the complete tagextractor configuration.
type Config struct {
	Source  Source  `toml:"source"`
	Counter Counter `toml:"counter"`
	Output  Output  `toml:"output"`
	Log     Log     `toml:"log"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Source: Source{
			Encoding: source.DefaultEncoding,
			HTML:     source.HTMLAuto,
		},
		Counter: Counter{
			MaxLineBytes: frequency.DefaultMaxLineBytes,
		},
		Output: Output{
			Color: ColorAuto,
		},
		Log: Log{
			Level: logger.DefaultLevel,
		},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// falls back to DefaultPath, which may be absent. The returned bool reports
// whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, false, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		if err := cfg.Validate(); err != nil {
			return nil, false, err
		}
		return &cfg, false, nil
	default:
		return nil, false, fmt.Errorf("open config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, true, err
	}
	return &cfg, true, nil
}

// SourceOptions returns the options used to open input files
func (c *Config) SourceOptions() source.Options {
	return source.Options{
		Encoding: c.Source.Encoding,
		HTML:     c.Source.HTML,
	}
}

// CounterOptions returns the options used to count a document
func (c *Config) CounterOptions() frequency.Options {
	return frequency.Options{MaxLineBytes: c.Counter.MaxLineBytes}
}

// Encode renders the configuration as TOML
func (c *Config) Encode() (string, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(b), nil
}

// CreateSample writes the commented sample configuration to path. An
// existing file is left untouched.
func CreateSample(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	if _, err := file.WriteString(sampleConfig); err != nil {
		file.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return file.Close()
}
