// Package callapi implements the call-api command: it relays a parameterized
// GET call from the hosting application to the remote service.
package callapi

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/agentstation/sitebridge/cmd/sitebridge/context"
	"github.com/agentstation/sitebridge/cmd/sitebridge/output"
	"github.com/agentstation/sitebridge/internal/relay"
)

// result is the success object for the call-api command.
type result struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"status_code"`
}

// NewCommand creates the call-api command using app context.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "call-api <url> <endpoint> <params-json>",
		GroupID: "bridge",
		Short:   "Relay a GET call to the remote service",
		Long: `Call-api forwards a user-triggered interaction from the generated website
back to the original API. The endpoint may be absolute or relative to the
base URL, and params-json is a JSON object encoded into the query string.`,
		Example: `  sitebridge call-api http://localhost:8001 /products '{"q": "milk"}'`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := appCtx.Output()
			if len(args) < 3 {
				return output.Usage(w, "URL, endpoint, and params required for call-api command")
			}

			var params map[string]any
			if err := json.Unmarshal([]byte(args[2]), &params); err != nil {
				return output.Usage(w, "Command failed: invalid params JSON: "+err.Error())
			}

			res, err := relay.New().Call(cmd.Context(), args[0], args[1], params)
			if err != nil {
				appCtx.Logger().Debug().Err(err).Str("endpoint", args[1]).Msg("Relay call failed")
				return output.Fail(w, err)
			}

			return output.Emit(w, result{
				Success:    true,
				Data:       res.Data,
				StatusCode: res.StatusCode,
			})
		},
	}
}
