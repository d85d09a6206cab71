// Package synth implements the website synthesizer: it classifies a service
// descriptor, builds a generation prompt from the matching template, delegates
// to an LLM provider, and sanitizes the result into raw markup.
package synth

import (
	"context"

	"github.com/agentstation/sitebridge/internal/llm"
	"github.com/agentstation/sitebridge/pkg/descriptor"
	"github.com/agentstation/sitebridge/pkg/logging"
)

// Synthesizer generates complete, self-contained web pages for socket-agent
// services.
type Synthesizer struct {
	provider llm.Provider
}

// New creates a synthesizer backed by the given provider.
func New(provider llm.Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Generate transforms a descriptor into a complete markup document with
// embedded styling and script. The page performs its API calls on user
// interaction rather than through explicit controls.
func (s *Synthesizer) Generate(ctx context.Context, d *descriptor.Descriptor) (string, error) {
	serviceType := ClassifyService(d)
	tmpl := TemplateFor(serviceType, d)
	prompt := BuildPrompt(d, serviceType, tmpl)

	logging.Ctx(ctx).Debug().
		Str("provider", s.provider.Name()).
		Str("service_type", string(serviceType)).
		Int("endpoints", len(d.Endpoints)).
		Msg("Generating website")

	raw, err := s.provider.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		return "", err
	}

	return CleanHTML(raw), nil
}
