// Package config loads reporter settings from an optional YAML file.
// Command-line flags override anything set here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vedro-universe/vedro-gitlab-reporter/internal/gitlab"
)

// Config holds the reporter settings.
type Config struct {
	// CollapsableMode is one of "steps", "vars", or "scope".
	CollapsableMode string `yaml:"collapsable_mode"`
	// TbMaxFrames is the max number of traceback frames to show (min 4).
	TbMaxFrames int `yaml:"tb_max_frames"`
	// TbShowInternalCalls shows host-internal traceback frames.
	TbShowInternalCalls bool `yaml:"tb_show_internal_calls"`
	// NoColor disables ANSI color. Section markers are emitted regardless.
	NoColor bool `yaml:"no_color"`
}

const minTbMaxFrames = 4

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		TbMaxFrames: 8,
	}
}

// Load reads the YAML file at path on top of the defaults. Unknown keys
// and invalid values are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings. An empty CollapsableMode is allowed here:
// the mode is required, but it may still arrive from a flag.
func (c Config) Validate() error {
	if c.CollapsableMode != "" {
		if _, err := gitlab.ParseCollapsableMode(c.CollapsableMode); err != nil {
			return err
		}
	}
	if c.TbMaxFrames < minTbMaxFrames {
		return fmt.Errorf("tb_max_frames must be at least %d, got %d", minTbMaxFrames, c.TbMaxFrames)
	}
	return nil
}
