// Package llm provides a uniform abstraction over text-generation backends.
// A Provider turns a system+user prompt pair into generated text; transport
// and credential details stay behind the interface. Variants cover the hosted
// OpenAI API, a local Ollama daemon, and the Gemini API.
package llm

import (
	"context"
	"fmt"

	"github.com/agentstation/sitebridge/pkg/errors"
)

// Provider names accepted by New.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// Provider generates text from a system+user prompt pair.
type Provider interface {
	// Name returns the provider's identifier for logging and error reporting.
	Name() string

	// Generate issues a single completion request and returns the generated
	// text verbatim. Any transport or API failure surfaces as an error; a
	// partially decoded response never reaches the caller.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Options configures provider construction. Zero values select the defaults
// for the chosen provider.
type Options struct {
	// Model overrides the provider's default model name.
	Model string

	// BaseURL overrides the provider's default endpoint. Used by the Ollama
	// variant for non-default daemon addresses and by tests.
	BaseURL string
}

// New constructs the named provider. An empty name selects OpenAI, matching
// the bridge's historical default.
func New(name string, opts Options) (Provider, error) {
	switch name {
	case "", ProviderOpenAI:
		return NewOpenAI(opts.Model, opts.BaseURL)
	case ProviderOllama:
		return NewOllama(opts.Model, opts.BaseURL), nil
	case ProviderGemini:
		return NewGemini(opts.Model)
	default:
		return nil, &errors.ConfigError{
			Component: "provider",
			Message:   fmt.Sprintf("unknown provider %q (expected openai, ollama, or gemini)", name),
		}
	}
}
