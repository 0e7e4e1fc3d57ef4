package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/splot2hlvl/internal/ctxlog"
	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
	"github.com/specialistvlad/splot2hlvl/internal/hlvl"
	"github.com/specialistvlad/splot2hlvl/internal/templates"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    featuremodel.Loader
	templates *templates.Set
	programs  []*hlvl.Program
}

// New is the constructor for the main application. Programs written to
// standard output go to outW and log records go to logW, so that the two
// streams never interleave. A templates file named in cfg is loaded here.
func New(outW, logW io.Writer, cfg *Config, loader featuremodel.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	set := templates.Default()
	if cfg.TemplatesPath != "" {
		var err error
		if set, err = templates.LoadFile(ctx, cfg.TemplatesPath); err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
		logger.Debug("Custom templates loaded.", "path", cfg.TemplatesPath)
	}

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		templates: set,
	}, nil
}

// Programs returns the programs translated by the last Run, in input order,
// including one whose write failed.
func (a *App) Programs() []*hlvl.Program {
	return a.programs
}
