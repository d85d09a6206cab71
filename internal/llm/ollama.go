package llm

import (
	"context"
	"strings"

	"github.com/agentstation/sitebridge/internal/transport"
	"github.com/agentstation/sitebridge/pkg/constants"
	"github.com/agentstation/sitebridge/pkg/errors"
)

// Ollama is the local-daemon provider. The daemon's generate endpoint has no
// distinct system and user roles, so both prompts are combined into one blob.
type Ollama struct {
	transport *transport.Client
	baseURL   string
	model     string
}

// generateRequest is the Ollama /api/generate request payload.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the subset of the Ollama response we consume.
type generateResponse struct {
	Response string `json:"response"`
}

// NewOllama creates the Ollama provider targeting the given daemon address.
func NewOllama(model, baseURL string) *Ollama {
	if model == "" {
		model = constants.DefaultOllamaModel
	}
	if baseURL == "" {
		baseURL = constants.DefaultOllamaBaseURL
	}

	return &Ollama{
		transport: transport.New(constants.GenerationTimeout),
		baseURL:   strings.TrimRight(baseURL, "/"),
		model:     model,
	}
}

// Name implements the Provider interface.
func (p *Ollama) Name() string { return ProviderOllama }

// Generate implements the Provider interface.
func (p *Ollama) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := generateRequest{
		Model:  p.model,
		Prompt: systemPrompt + "\n\n" + userPrompt,
		Stream: false,
	}

	resp, err := p.transport.PostJSON(ctx, p.baseURL+"/api/generate", payload)
	if err != nil {
		return "", errors.WrapProvider(ProviderOllama, err)
	}

	var result generateResponse
	if err := transport.DecodeResponse(resp, &result); err != nil {
		return "", errors.WrapProvider(ProviderOllama, err)
	}

	if result.Response == "" {
		return "", errors.NewProviderError(ProviderOllama, "response contained no generated text", nil)
	}

	return result.Response, nil
}
