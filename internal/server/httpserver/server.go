// Package httpserver runs the experiment config listener on top of the
// go-supervisor HTTP runnable.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
)

var (
	ErrEmptyAddress = errors.New("listen address is required")
	ErrNoRoutes     = errors.New("at least one route is required")
)

// Default timeouts for the listener
const (
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 5 * time.Second
)

// TimeoutOptions contains timeout configuration for the HTTP server
type TimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// DefaultTimeouts returns the default listener timeouts
func DefaultTimeouts() TimeoutOptions {
	return TimeoutOptions{
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
		DrainTimeout: DefaultDrainTimeout,
	}
}

// serverImplementation abstracts the underlying go-supervisor runner
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsRunning() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer wraps go-supervisor's httpserver.Runner. The route set is fixed
// at construction and the server does not implement supervisor.Reloadable.
type HTTPServer struct {
	id      string
	address string
	server  serverImplementation

	logger   *slog.Logger
	routes   []httpserver.Route
	timeouts TimeoutOptions
}

// NewHTTPServer creates a new HTTP server with the specified configuration
func NewHTTPServer(
	id, address string,
	routes []httpserver.Route,
	timeouts TimeoutOptions,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	s := &HTTPServer{
		id:       id,
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		logger:   logger,
	}

	if err := s.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return s, nil
}

// configOptions converts the non-zero timeouts to go-supervisor config options
func (s *HTTPServer) configOptions() []httpserver.ConfigOption {
	options := []httpserver.ConfigOption{}
	if s.timeouts.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(s.timeouts.ReadTimeout))
	}
	if s.timeouts.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(s.timeouts.WriteTimeout))
	}
	if s.timeouts.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.timeouts.IdleTimeout))
	}
	if s.timeouts.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.timeouts.DrainTimeout))
	}
	return options
}

func (s *HTTPServer) initializeRunner() error {
	configCallback := func() (*httpserver.Config, error) {
		config, err := httpserver.NewConfig(s.address, s.routes, s.configOptions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	s.server = runner
	return nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run starts the HTTP server and blocks until ctx is canceled or Stop is called
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

// IsRunning returns whether the server is running
func (s *HTTPServer) IsRunning() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsRunning()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

// GetID returns the ID of this HTTP server
func (s *HTTPServer) GetID() string {
	return s.id
}

// GetAddress returns the address this server listens on
func (s *HTTPServer) GetAddress() string {
	return s.address
}
