// Package constants provides shared constants used throughout the sitebridge codebase.
// This includes timeouts, limits, and protocol values that should be consistent
// across the application.
package constants

import "time"

// Timeout constants define the timeout durations used in the application
const (
	// DefaultTimeout is the timeout for plain HTTP requests (discovery, relay)
	DefaultTimeout = 10 * time.Second

	// GenerationTimeout is the timeout for LLM generation requests
	GenerationTimeout = 60 * time.Second
)

// Protocol constants define fixed values of the socket-agent protocol
const (
	// WellKnownPath is the well-known path where services publish their descriptor
	WellKnownPath = "/.well-known/socket-agent"
)

// Generation constants define limits for LLM output
const (
	// MaxCompletionTokens caps the size of a single generated completion
	MaxCompletionTokens = 4000
)

// Provider defaults
const (
	// DefaultOpenAIBaseURL is the OpenAI API endpoint
	DefaultOpenAIBaseURL = "https://api.openai.com"

	// DefaultOpenAIModel is the model used for website generation
	DefaultOpenAIModel = "gpt-4o"

	// DefaultOllamaBaseURL is the local Ollama daemon endpoint
	DefaultOllamaBaseURL = "http://localhost:11434"

	// DefaultOllamaModel is the local model used for website generation
	DefaultOllamaModel = "qwen2.5-coder:7b"

	// DefaultGeminiModel is the Gemini model used for website generation
	DefaultGeminiModel = "gemini-2.0-flash"
)
