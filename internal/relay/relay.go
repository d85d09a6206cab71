// Package relay forwards parameterized GET calls from the hosting application
// to the remote socket-agent API. One attempt per call, bounded timeout, no
// pagination and no methods other than GET.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/agentstation/sitebridge/internal/transport"
	"github.com/agentstation/sitebridge/pkg/constants"
)

// Result is the decoded outcome of a successful relay call.
type Result struct {
	Data       json.RawMessage
	StatusCode int
}

// Client relays API calls to a remote service.
type Client struct {
	transport *transport.Client
}

// New creates a relay client with the default request timeout.
func New() *Client {
	return &Client{transport: transport.New(constants.DefaultTimeout)}
}

// Call issues a GET request to baseURL joined with endpoint, encoding params
// as the query string. Non-2xx statuses and non-JSON bodies are errors.
func (c *Client) Call(ctx context.Context, baseURL, endpoint string, params map[string]any) (*Result, error) {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, fmt.Sprint(value))
	}

	resp, err := c.transport.Get(ctx, JoinURL(baseURL, endpoint), values)
	if err != nil {
		return nil, err
	}

	status := resp.StatusCode
	var data json.RawMessage
	if err := transport.DecodeResponse(resp, &data); err != nil {
		return nil, err
	}

	return &Result{Data: data, StatusCode: status}, nil
}

// JoinURL joins a base URL and an endpoint path with exactly one separator
// between them, whether or not the endpoint carries a leading slash.
func JoinURL(baseURL, endpoint string) string {
	base := strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return base + endpoint
}
