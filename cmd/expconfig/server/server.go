// Package server assembles the experiment config listener and runs it under
// a go-supervisor process supervisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/supervisor"

	"github.com/atlanticdynamic/expconfig/internal/config"
	"github.com/atlanticdynamic/expconfig/internal/server/apps/experiment"
	"github.com/atlanticdynamic/expconfig/internal/server/httpserver"
	"github.com/atlanticdynamic/expconfig/internal/server/middleware"
)

// DefaultListenAddr is used when no listen address is given
const DefaultListenAddr = "127.0.0.1:8080"

const appID = "experiment"

var ErrInvalidConfig = errors.New("refusing to serve an invalid configuration")

// Options configure the listener
type Options struct {
	ListenAddr string
	Selector   string
	Timeouts   httpserver.TimeoutOptions
}

// NewRunnable builds the HTTP runnable serving cfg
func NewRunnable(logger *slog.Logger, cfg config.ExperimentConfig, opts Options) (*httpserver.HTTPServer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if opts.ListenAddr == "" {
		opts.ListenAddr = DefaultListenAddr
	}
	if opts.Timeouts == (httpserver.TimeoutOptions{}) {
		opts.Timeouts = httpserver.DefaultTimeouts()
	}

	app, err := experiment.New(appID, cfg, opts.Selector)
	if err != nil {
		return nil, err
	}

	routes, err := app.Routes(middleware.Chain(logger.With("component", "http"))...)
	if err != nil {
		return nil, fmt.Errorf("failed to build routes: %w", err)
	}

	return httpserver.NewHTTPServer(
		appID,
		opts.ListenAddr,
		routes,
		opts.Timeouts,
		logger.WithGroup("httpserver").With("id", appID),
	)
}

// Run serves cfg until ctx is cancelled or the process receives a shutdown signal
func Run(ctx context.Context, logger *slog.Logger, cfg config.ExperimentConfig, opts Options) error {
	if logger == nil {
		logger = slog.Default()
	}

	runnable, err := NewRunnable(logger, cfg, opts)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(runnable),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}

	logger.Info("Serving experiment config",
		"listen", runnable.GetAddress(),
		"paths", []string{
			experiment.PathJSON,
			experiment.PathModule,
			experiment.PathCSS,
			experiment.PathHealth,
		},
	)
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
