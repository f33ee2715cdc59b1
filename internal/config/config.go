// Package config loads surfgo CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/surfgo/codec"
)

// Config holds CLI settings.
type Config struct {
	// Codec is the envelope codec name: raw, lz4 or zstd.
	Codec string `yaml:"codec"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Concurrency bounds parallel decoding; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency"`
	// SkipMalformed skips undecodable records instead of aborting.
	SkipMalformed bool `yaml:"skip_malformed"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Codec:     "raw",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadFromFile reads path on top of the defaults. An empty path yields the
// defaults; a path that does not exist is an error.
func LoadFromFile(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg. Keys absent from data keep their value.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency: %d", c.Concurrency)
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// EnvelopeCodec returns the configured codec.
func (c *Config) EnvelopeCodec() codec.Codec {
	cd, ok := codec.ByName(c.Codec)
	if !ok {
		return codec.Default
	}
	return cd
}
