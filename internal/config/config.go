// Package config loads the host program's optional malisp.yaml, describing
// REPL cosmetics and interpreter limits. Neither spec.md nor the core
// packages know this file exists; it is ambient configuration for
// cmd/malisp only.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the shape of malisp.yaml.
type Config struct {
	// Prompt is the string printed before each REPL read. Defaults to "malisp> ".
	Prompt string `yaml:"prompt"`

	// Color enables ANSI styling of REPL output when stdout is a terminal.
	// Defaults to true; set false to force plain text (useful for scripted
	// or piped sessions).
	Color *bool `yaml:"color"`

	// MaxCallDepth bounds the evaluator's recursion depth before it returns
	// a StackOverflow error instead of recursing further into the host
	// stack. Zero or unset means "no explicit limit" (rely on the host
	// stack's own limit).
	MaxCallDepth int `yaml:"max_call_depth"`
}

// Default returns the configuration used when no malisp.yaml is found.
func Default() *Config {
	color := true
	return &Config{Prompt: "malisp> ", Color: &color, MaxCallDepth: 0}
}

// Load reads and parses path. A missing file is not an error: Load returns
// Default() in that case, matching the "--config is optional" contract of
// cmd/malisp.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ColorEnabled reports whether styled output is requested.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
