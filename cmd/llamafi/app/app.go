// Package app provides the application context and dependency management
// for the llamafi CLI. It centralizes configuration, logging, and the shared
// API client so commands only depend on the application.Application interface.
package app

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/llamafi"
	"github.com/agentstation/llamafi/internal/cmd/application"
	"github.com/agentstation/llamafi/pkg/errors"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the llamafi application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// API client (lazy-initialized, singleton)
	mu         sync.RWMutex
	client     *llamafi.Client
	httpClient *http.Client
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file and can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the API client, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Client() (*llamafi.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	a.httpClient = &http.Client{Timeout: a.config.Timeout}
	c, err := llamafi.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Shutdown releases the connections held by the API client.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	hc := a.httpClient
	a.mu.RUnlock()

	if hc != nil {
		hc.CloseIdleConnections()
		a.logger.Debug().Msg("Closed idle connections")
	}

	return nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []llamafi.Option {
	opts := []llamafi.Option{
		llamafi.WithHTTPClient(a.httpClient),
		llamafi.WithLogger(a.logger),
	}

	if a.config.RateLimit > 0 {
		opts = append(opts, llamafi.WithRateLimit(a.config.RateLimit, a.config.RateBurst))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom API client (useful for testing).
func WithClient(c *llamafi.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
