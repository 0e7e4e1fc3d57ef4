package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath     string // .xml file or directory of .xml files
	OutputPath    string // file or directory; empty means the App's writer
	TargetName    string // base of the model name; empty derives it from the input
	TemplatesPath string // optional HCL templates file

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LogFormat %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LogLevel %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
