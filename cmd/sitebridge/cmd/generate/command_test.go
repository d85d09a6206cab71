package generate_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sitebridge/cmd/sitebridge/cmd/generate"
	"github.com/agentstation/sitebridge/cmd/sitebridge/context"
)

// TestConfiguredDefaults verifies that provider selection falls back to the
// app configuration when no flags are given.
func TestConfiguredDefaults(t *testing.T) {
	daemon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "llama3", payload["model"])

		_, _ = w.Write([]byte(`{"response": "<html>from daemon</html>"}`))
	}))
	defer daemon.Close()

	var buf bytes.Buffer
	mock := &context.Mock{
		OutputValue:    &buf,
		ProviderValue:  "ollama",
		ModelValue:     "llama3",
		OllamaURLValue: daemon.URL,
	}

	cmd := generate.NewCommand(mock)
	cmd.SetArgs([]string{`{"name": "Fresh Mart", "description": "grocery", "baseUrl": "http://x", "endpoints": []}`})

	require.NoError(t, cmd.Execute())

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "<html>from daemon</html>", result["html"])
}
