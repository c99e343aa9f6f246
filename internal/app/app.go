package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/chronotype/internal/attr"
	"github.com/vk/chronotype/internal/binder"
	"github.com/vk/chronotype/internal/ctxlog"
	"github.com/vk/chronotype/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *attr.Model
	config   *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, the
// configuration loaded into the unified model and the model validated
// against the registry. A failure in any of these steps is a fatal startup
// error and panics; the CLI entrypoint recovers and exits non-zero.
func New(outW io.Writer, cfg *Config, loader attr.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All type modules registered.", "modules", len(modules), "types", len(reg.TypeNames()))

	model := attr.NewModel()
	if cfg.ConfigPath != "" {
		var err error
		model, err = loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		logger.Debug("Configuration loaded and translated into unified model.")

		// A mismatch between declarations and registered types is a wiring
		// error, so we panic.
		if err := binder.ValidateModel(ctx, model, reg); err != nil {
			panic(err)
		}
		logger.Debug("Model validation passed.")
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded declaration model. This is primarily for testing.
func (a *App) Model() *attr.Model {
	return a.model
}
