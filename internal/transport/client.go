// Package transport provides the HTTP client functionality shared by the
// discovery client, the API relay, and the HTTP-based LLM providers. Every
// request is a single attempt with a bounded timeout; there is no retry
// policy and no connection reuse across command invocations.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/agentstation/sitebridge/pkg/errors"
)

// Client provides HTTP client functionality with optional authentication.
type Client struct {
	http   *http.Client
	auth   Authenticator
	apiKey string
}

// New creates a new transport client with the given per-request timeout.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		auth: &NoAuth{},
	}
}

// NewWithBearer creates a transport client that authenticates every request
// with a Bearer token.
func NewWithBearer(timeout time.Duration, apiKey string) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		auth:   &BearerAuth{},
		apiKey: apiKey,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI(req.URL.String(), 0, err)
	}
	return resp, nil
}

// Get performs a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.WrapAPI(rawURL, 0, err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	return c.Do(req)
}

// PostJSON performs a POST request with a JSON-encoded payload.
func (c *Client) PostJSON(ctx context.Context, rawURL string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapAPI(rawURL, 0, err)
	}
	return c.Do(req)
}

// DecodeResponse reads a response body, verifies a 2xx status, and decodes the
// JSON payload into target. When target is a *json.RawMessage the body is kept
// verbatim after validation. Callers must not touch the body afterwards; it is
// always closed here.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.String()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := http.StatusText(resp.StatusCode)
		if len(body) > 0 && len(body) <= 512 {
			message = string(body)
		}
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.NewParseError("json", endpoint, err.Error(), err)
	}

	return nil
}
