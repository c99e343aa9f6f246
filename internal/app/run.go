package app

import (
	"context"
	"fmt"

	"github.com/vk/chronotype/internal/binder"
	"github.com/vk/chronotype/internal/ctxlog"
)

// Run executes the main application logic: the -types listing, or a full
// bind of every loaded object followed by a rendered report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.ListTypes {
		a.printTypes()
		return nil
	}

	a.logger.Info("🚀 Starting binding...", "objects", len(a.model.Objects))
	bound, err := binder.Bind(ctx, a.model, a.registry)
	if err != nil {
		return fmt.Errorf("binding failed: %w", err)
	}
	a.logger.Info("🏁 Binding finished.", "objects", len(bound))

	if len(bound) == 0 {
		a.logger.Warn("No objects found in configuration, nothing to report.")
		return nil
	}

	if err := a.printReport(bound); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
