package app

import (
	"errors"
	"fmt"
)

// Source format names accepted by LoaderFor.
const (
	FormatAuto = "auto"
	FormatHCL  = "hcl"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // a file, or a directory searched for .hcl/.yaml files
	Format     string // auto, hcl or yaml

	LogFormat string
	LogLevel  string

	// ListTypes prints the registered types and their coercion rules
	// instead of binding, in which case ConfigPath may be empty.
	ListTypes bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = FormatAuto
	}
	switch cfg.Format {
	case FormatAuto, FormatHCL, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of auto, hcl, yaml", cfg.Format)
	}

	if cfg.ConfigPath == "" && !cfg.ListTypes {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
