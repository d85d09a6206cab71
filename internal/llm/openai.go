package llm

import (
	"context"

	"github.com/agentstation/sitebridge/internal/transport"
	"github.com/agentstation/sitebridge/pkg/constants"
	"github.com/agentstation/sitebridge/pkg/errors"
)

// OpenAI is the hosted chat-completions provider.
type OpenAI struct {
	transport *transport.Client
	baseURL   string
	model     string
}

// chatMessage is one message in a chat completion exchange.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat completions request payload.
type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

// chatResponse is the subset of the chat completions response we consume.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAI creates the OpenAI provider, resolving the API key from the
// OPENAI_API_KEY environment variable or the ordered .env candidates. Missing
// credentials are a configuration error surfaced at construction time.
func NewOpenAI(model, baseURL string) (*OpenAI, error) {
	apiKey, ok := ResolveKey("OPENAI_API_KEY", DefaultEnvFilePaths)
	if !ok {
		return nil, errors.NewConfigError("openai",
			"OpenAI API key not found. Set OPENAI_API_KEY environment variable or add to .env file.",
			errors.ErrAPIKeyRequired)
	}

	if model == "" {
		model = constants.DefaultOpenAIModel
	}
	if baseURL == "" {
		baseURL = constants.DefaultOpenAIBaseURL
	}

	return &OpenAI{
		transport: transport.NewWithBearer(constants.GenerationTimeout, apiKey),
		baseURL:   baseURL,
		model:     model,
	}, nil
}

// Name implements the Provider interface.
func (p *OpenAI) Name() string { return ProviderOpenAI }

// Generate implements the Provider interface.
func (p *OpenAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxCompletionTokens: constants.MaxCompletionTokens,
	}

	resp, err := p.transport.PostJSON(ctx, p.baseURL+"/v1/chat/completions", payload)
	if err != nil {
		return "", errors.WrapProvider(ProviderOpenAI, err)
	}

	var result chatResponse
	if err := transport.DecodeResponse(resp, &result); err != nil {
		return "", errors.WrapProvider(ProviderOpenAI, err)
	}

	if len(result.Choices) == 0 {
		return "", errors.NewProviderError(ProviderOpenAI, "response contained no choices", nil)
	}

	return result.Choices[0].Message.Content, nil
}
