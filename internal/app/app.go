// Package app initializes and holds long-lived application services, acting as a dependency injection container.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdqtools/pdq-scraper/internal/config"
	"github.com/pdqtools/pdq-scraper/internal/logging"
)

// App holds the shared, long-lived services for the application.
// It is initialized once at startup and handed to the commands that need it.
type App struct {
	logger *zap.Logger
	cfg    config.Config
}

// New creates an App from the loaded configuration. It is the central point
// for service initialization and fails fast if the logger cannot be built.
func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &App{logger: logger, cfg: cfg}, nil
}

// NewWithLogger builds an App around an existing logger, for callers that
// manage the logger themselves (tests, embedding).
func NewWithLogger(cfg config.Config, logger *zap.Logger) *App {
	return &App{logger: logger, cfg: cfg}
}

// Logger returns the shared zap logger instance.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Config returns the loaded configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Run executes the scraper. The scrape pipeline itself is not built yet;
// a run announces itself, does no work, and announces completion.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting PDQ Scraper...")
	// TODO: Implement scraper logic
	a.logger.Info("PDQ Scraper completed successfully")
	return nil
}

// Close flushes the logger. It is called by a Cobra hook after the command
// finishes execution.
func (a *App) Close() {
	// Best-effort: syncing stderr fails on some platforms.
	_ = a.logger.Sync()
}
