// Package app provides the application context and dependency management for
// the sitebridge CLI. It centralizes configuration, logging, and output
// wiring, following the dependency injection pattern: commands receive the
// app through a small interface and never touch process-level state directly.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/sitebridge/pkg/errors"
)

// App represents the sitebridge application with all its dependencies.
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

	// Output writer for the single JSON result line
	output io.Writer
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		output:  os.Stdout,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Option configures an App.
type Option func(*App)

// WithOutput overrides the result writer. Used by tests to capture output.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.output = w }
}

// WithLogger overrides the configured logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// Logger implements the command context interface.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Output implements the command context interface.
func (a *App) Output() io.Writer { return a.output }

// DefaultProvider implements the command context interface.
func (a *App) DefaultProvider() string { return a.config.Provider }

// DefaultModel implements the command context interface.
func (a *App) DefaultModel() string { return a.config.Model }

// DefaultOllamaURL implements the command context interface.
func (a *App) DefaultOllamaURL() string { return a.config.OllamaURL }

// Version returns the application version string.
func (a *App) Version() string { return a.version }
