// Package errors provides custom error types for the sitebridge system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the sitebridge system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIKeyRequired indicates that an API key is required but not provided
	ErrAPIKeyRequired = errors.New("API key required")

	// ErrProviderUnavailable indicates that a provider is temporarily unavailable
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// APIError represents an error from a remote HTTP API
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrProviderUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "env", etc.
	Source  string // URL or file the data came from
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s parse error from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// ProviderError represents a failure surfaced by an LLM provider
type ProviderError struct {
	Provider string // "openai", "ollama", "gemini"
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new ProviderError
func NewProviderError(provider, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Message:  message,
		Err:      err,
	}
}

// Helper functions for error checking

// IsAPIKeyError checks if an error is related to API keys
func IsAPIKeyError(err error) bool {
	return errors.Is(err, ErrAPIKeyRequired)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsProviderUnavailable checks if an error indicates provider unavailability
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}

// IsInvalidInput checks if an error is a parse or validation error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}

// WrapProvider wraps an error as a ProviderError
func WrapProvider(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Err: err}
}
