// Package generate implements the generate-website command: it synthesizes a
// complete interactive website from a socket-agent descriptor via an LLM
// provider.
package generate

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/agentstation/sitebridge/cmd/sitebridge/context"
	"github.com/agentstation/sitebridge/cmd/sitebridge/output"
	"github.com/agentstation/sitebridge/internal/llm"
	"github.com/agentstation/sitebridge/internal/synth"
	"github.com/agentstation/sitebridge/pkg/descriptor"
	"github.com/agentstation/sitebridge/pkg/logging"
)

// result is the success object for the generate-website command.
type result struct {
	Success bool   `json:"success"`
	HTML    string `json:"html"`
}

// NewCommand creates the generate-website command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	var (
		provider  string
		model     string
		ollamaURL string
	)

	cmd := &cobra.Command{
		Use:     "generate-website <descriptor-json>",
		GroupID: "bridge",
		Short:   "Synthesize a website from a descriptor",
		Long: `Generate-website builds a prompt from a socket-agent descriptor, delegates
to an LLM provider, and prints the sanitized markup as a JSON result object.

The generated page is self-contained: embedded styling, embedded script,
and API calls performed on user interaction rather than through explicit
controls. Provider selection defaults to OpenAI; a local Ollama daemon or
the Gemini API can be selected with --provider.`,
		Example: `  sitebridge generate-website "$(sitebridge discover http://localhost:8001 | jq -c .descriptor)"
  sitebridge generate-website --provider ollama --model llama3 '{"name": "Fresh Mart", ...}'`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := appCtx.Output()
			if len(args) < 1 {
				return output.Usage(w, "Descriptor JSON required for generate-website command")
			}

			d, err := descriptor.Parse([]byte(args[0]))
			if err != nil {
				return output.Usage(w, "Command failed: "+err.Error())
			}

			providerName := provider
			if providerName == "" {
				providerName = appCtx.DefaultProvider()
			}
			modelName := model
			if modelName == "" {
				modelName = appCtx.DefaultModel()
			}
			daemonURL := ollamaURL
			if daemonURL == "" {
				daemonURL = appCtx.DefaultOllamaURL()
			}

			// Credential resolution, prompt construction, and provider
			// invocation all fail into the same result shape. This command
			// is a terminal handler; nothing raises past it.
			backend, err := llm.New(providerName, llm.Options{Model: modelName, BaseURL: daemonURL})
			if err != nil {
				return failGeneration(appCtx, err)
			}

			ctx := logging.WithLogger(cmd.Context(), appCtx.Logger())
			html, err := synth.New(backend).Generate(ctx, d)
			if err != nil {
				return failGeneration(appCtx, err)
			}

			return output.Emit(w, result{Success: true, HTML: html})
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider: openai, ollama, or gemini")
	cmd.Flags().StringVar(&model, "model", "", "model name override")
	cmd.Flags().StringVar(&ollamaURL, "ollama-url", "", "Ollama daemon address (default http://localhost:11434)")

	return cmd
}

// failGeneration logs the failure with a stack trace to the error channel and
// emits a failure result carrying the message plus the diagnostic trace.
func failGeneration(appCtx context.Context, err error) error {
	details := fmt.Sprintf("Error: %s\nTrace: %s", err.Error(), debug.Stack())
	appCtx.Logger().Error().Err(err).Msg("Website generation failed")
	return output.FailMessage(appCtx.Output(), details)
}
