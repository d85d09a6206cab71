// Package descriptor defines the socket-agent service descriptor: the
// machine-readable self-description a remote API publishes at its well-known
// path. A descriptor is immutable once parsed within a single invocation.
package descriptor

import (
	"encoding/json"

	"github.com/agentstation/sitebridge/pkg/errors"
)

// Descriptor describes a remote socket-agent service.
type Descriptor struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BaseURL     string     `json:"baseUrl"`
	Endpoints   []Endpoint `json:"endpoints"`
}

// Endpoint describes a single operation the remote service exposes.
// All fields except Path are optional in the wire format.
type Endpoint struct {
	OperationID string `json:"operationId,omitempty"`
	Path        string `json:"path"`
	Method      string `json:"method,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Parse decodes a descriptor from its JSON representation.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.WrapParse("json", "descriptor", err)
	}
	return &d, nil
}

// DisplayID returns the identifier used when rendering the endpoint for a
// prompt: the operation ID when present, otherwise the path.
func (e Endpoint) DisplayID() string {
	if e.OperationID != "" {
		return e.OperationID
	}
	return e.Path
}

// HTTPMethod returns the endpoint's method, defaulting to GET when the
// descriptor omits it.
func (e Endpoint) HTTPMethod() string {
	if e.Method != "" {
		return e.Method
	}
	return "GET"
}
