// Package context provides the application context interface for sitebridge
// commands.
//
// The Context interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
// Commands accept this interface rather than the concrete App type, so tests
// can supply a mock with a captured output buffer and a Nop logger.
package context

import (
	"io"

	"github.com/rs/zerolog"
)

// Context provides the application context that commands need.
// The App struct from cmd/sitebridge/app implements this interface.
type Context interface {
	// Logger returns the configured logger instance. Commands should use
	// this for all logging; it always writes to stderr.
	Logger() *zerolog.Logger

	// Output returns the writer for the single JSON result line. This is
	// stdout in production and a buffer in tests.
	Output() io.Writer

	// DefaultProvider returns the configured LLM provider name used when a
	// command does not override it.
	DefaultProvider() string

	// DefaultModel returns the configured model override, if any.
	DefaultModel() string

	// DefaultOllamaURL returns the configured Ollama daemon address override,
	// if any.
	DefaultOllamaURL() string
}

// Mock is a test double for Context.
type Mock struct {
	LoggerValue    *zerolog.Logger
	OutputValue    io.Writer
	ProviderValue  string
	ModelValue     string
	OllamaURLValue string
}

// Logger implements the Context interface.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerValue == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return m.LoggerValue
}

// Output implements the Context interface.
func (m *Mock) Output() io.Writer { return m.OutputValue }

// DefaultProvider implements the Context interface.
func (m *Mock) DefaultProvider() string { return m.ProviderValue }

// DefaultModel implements the Context interface.
func (m *Mock) DefaultModel() string { return m.ModelValue }

// DefaultOllamaURL implements the Context interface.
func (m *Mock) DefaultOllamaURL() string { return m.OllamaURLValue }
