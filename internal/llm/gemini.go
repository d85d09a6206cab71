package llm

import (
	"context"

	"google.golang.org/genai"

	"github.com/agentstation/sitebridge/pkg/constants"
	"github.com/agentstation/sitebridge/pkg/errors"
)

// Gemini is the hosted Gemini API provider, backed by the official genai SDK.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates the Gemini provider, resolving the API key from the
// GEMINI_API_KEY environment variable or the ordered .env candidates.
func NewGemini(model string) (*Gemini, error) {
	apiKey, ok := ResolveKey("GEMINI_API_KEY", DefaultEnvFilePaths)
	if !ok {
		return nil, errors.NewConfigError("gemini",
			"Gemini API key not found. Set GEMINI_API_KEY environment variable or add to .env file.",
			errors.ErrAPIKeyRequired)
	}

	if model == "" {
		model = constants.DefaultGeminiModel
	}

	return &Gemini{apiKey: apiKey, model: model}, nil
}

// Name implements the Provider interface.
func (p *Gemini) Name() string { return ProviderGemini }

// Generate implements the Provider interface.
func (p *Gemini) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.GenerationTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", errors.WrapProvider(ProviderGemini, err)
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   constants.MaxCompletionTokens,
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt), config)
	if err != nil {
		return "", errors.WrapProvider(ProviderGemini, err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.NewProviderError(ProviderGemini, "response contained no generated text", nil)
	}

	return text, nil
}
