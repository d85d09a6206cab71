// Package discover implements the discover command: it fetches a service's
// socket-agent descriptor from its well-known path.
package discover

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/agentstation/sitebridge/cmd/sitebridge/context"
	"github.com/agentstation/sitebridge/cmd/sitebridge/output"
	"github.com/agentstation/sitebridge/internal/discovery"
)

// result is the success object for the discover command.
type result struct {
	Success    bool            `json:"success"`
	Descriptor json.RawMessage `json:"descriptor"`
}

// NewCommand creates the discover command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "discover <url>",
		GroupID: "bridge",
		Short:   "Fetch a service's socket-agent descriptor",
		Long: `Discover fetches the machine-readable descriptor a socket-agent service
publishes at <url>/.well-known/socket-agent.

The parsed descriptor is printed as a JSON result object for the hosting
application to feed back into generate-website.`,
		Example: `  sitebridge discover http://localhost:8001`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := appCtx.Output()
			if len(args) < 1 {
				return output.Usage(w, "URL required for discover command")
			}

			_, raw, err := discovery.New().Discover(cmd.Context(), args[0])
			if err != nil {
				appCtx.Logger().Debug().Err(err).Str("url", args[0]).Msg("Discovery failed")
				return output.Fail(w, err)
			}

			return output.Emit(w, result{Success: true, Descriptor: raw})
		},
	}
}
