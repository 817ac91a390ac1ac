// =============================================================================
// CMMC Assessment Importer - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file and
// applies defaults for anything unset. When the default configuration file
// is absent the tool runs entirely on defaults, so a bare checkout works
// without any setup.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// StorePath is the SQLite database holding assessment state.
	// Default: "./data/assessment.db"
	StorePath string `yaml:"store_path"`

	// CatalogPath is the YAML control catalog. Empty selects the built-in
	// 800-171 Access Control subset.
	CatalogPath string `yaml:"catalog_path"`

	// Revision selects the canonical objective numbering scheme:
	// "rev2" (plain, "3.1.1[a]") or "rev3" (zero-padded, "03.01.01[a]").
	// Default: "rev2"
	Revision string `yaml:"revision"`

	// ArchiveDir is where successfully imported files are moved.
	// Empty disables archival.
	ArchiveDir string `yaml:"archive_dir"`

	// Delimiter is the field delimiter for delimited-text input.
	// Accepts the usual spellings: ",", ";", "|", "pipe", "tab", "\t".
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// LogLevel controls logging verbosity: debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFile is the log destination. Empty logs to stderr.
	LogFile string `yaml:"log_file"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from path. A missing file at the default
// path yields the default configuration; a missing file at an explicitly
// requested path is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join("data", "assessment.db")
	}
	if cfg.Revision == "" {
		cfg.Revision = "rev2"
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ","
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks referenced paths and creates the archive directory when
// configured.
func validate(cfg *Config) error {
	if cfg.CatalogPath != "" {
		if _, err := os.Stat(cfg.CatalogPath); err != nil {
			return fmt.Errorf("catalog_path: %w", err)
		}
	}
	if cfg.ArchiveDir != "" {
		if err := os.MkdirAll(cfg.ArchiveDir, 0755); err != nil {
			return fmt.Errorf("failed to create archive directory: %w", err)
		}
	}
	return nil
}
