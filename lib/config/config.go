// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for the Arbor editor.
type Config struct {
	// Editor configures editing behavior.
	Editor EditorConfig `yaml:"editor"`

	// UI configures the terminal interface.
	UI UIConfig `yaml:"ui"`

	// Paths configures where Arbor keeps its own files.
	Paths PathsConfig `yaml:"paths"`
}

// EditorConfig configures editing behavior.
type EditorConfig struct {
	// ConfirmDelete asks for confirmation before deleting a node.
	// Default: true.
	ConfirmDelete bool `yaml:"confirm_delete"`

	// BackupOnSave writes a .bak copy of the previous file content
	// before overwriting. Default: false.
	BackupOnSave bool `yaml:"backup_on_save"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// ShowPreview enables the syntax-highlighted raw JSON preview
	// pane for the selected subtree. Default: true.
	ShowPreview bool `yaml:"show_preview"`

	// PreviewLimit caps the number of serialized bytes rendered in
	// the preview pane; larger subtrees are truncated for display.
	// Default: 16384.
	PreviewLimit int `yaml:"preview_limit"`

	// ResultsLimit caps the number of find-all results kept in the
	// side pane. The reported match count is unaffected.
	// Default: 10000.
	ResultsLimit int `yaml:"results_limit"`
}

// PathsConfig configures where Arbor keeps its own files.
type PathsConfig struct {
	// State is the directory for UI state (recent files, last
	// query). Default: ~/.cache/arbor.
	State string `yaml:"state"`
}

// Default returns the default configuration. These are working values,
// not placeholders: Arbor runs without any config file.
func Default() *Config {
	homeDirectory, _ := os.UserHomeDir()
	return &Config{
		Editor: EditorConfig{
			ConfirmDelete: true,
			BackupOnSave:  false,
		},
		UI: UIConfig{
			ShowPreview:  true,
			PreviewLimit: 16384,
			ResultsLimit: 10000,
		},
		Paths: PathsConfig{
			State: filepath.Join(homeDirectory, ".cache", "arbor"),
		},
	}
}

// Load loads configuration from the ARBOR_CONFIG environment variable,
// falling back to defaults when it is unset.
func Load() (*Config, error) {
	configPath := os.Getenv("ARBOR_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.PreviewLimit < 0 {
		errs = append(errs, fmt.Errorf("ui.preview_limit must not be negative"))
	}
	if c.UI.ResultsLimit < 0 {
		errs = append(errs, fmt.Errorf("ui.results_limit must not be negative"))
	}
	if c.Paths.State == "" {
		errs = append(errs, fmt.Errorf("paths.state is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// StateFile returns the path of the persisted UI state inside the
// state directory.
func (c *Config) StateFile() string {
	return filepath.Join(c.Paths.State, "state.cbor")
}

// EnsurePaths creates the configured directories if they don't exist.
func (c *Config) EnsurePaths() error {
	if c.Paths.State == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.State, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Paths.State, err)
	}
	return nil
}
