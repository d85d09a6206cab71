// Package discovery implements the socket-agent discovery client. It fetches
// a service descriptor from the well-known path on a target service with a
// single bounded-timeout attempt.
package discovery

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/agentstation/sitebridge/internal/transport"
	"github.com/agentstation/sitebridge/pkg/constants"
	"github.com/agentstation/sitebridge/pkg/descriptor"
)

// Client discovers socket-agent services.
type Client struct {
	transport *transport.Client
}

// New creates a discovery client with the default request timeout.
func New() *Client {
	return &Client{transport: transport.New(constants.DefaultTimeout)}
}

// Discover fetches and parses the descriptor published by the service at
// baseURL. The raw JSON payload is returned alongside the parsed form so
// fields beyond the typed subset survive the round trip to the caller.
func (c *Client) Discover(ctx context.Context, baseURL string) (*descriptor.Descriptor, json.RawMessage, error) {
	discoveryURL := strings.TrimRight(baseURL, "/") + constants.WellKnownPath

	resp, err := c.transport.Get(ctx, discoveryURL, nil)
	if err != nil {
		return nil, nil, err
	}

	var raw json.RawMessage
	if err := transport.DecodeResponse(resp, &raw); err != nil {
		return nil, nil, err
	}

	d, err := descriptor.Parse(raw)
	if err != nil {
		return nil, nil, err
	}

	return d, raw, nil
}
