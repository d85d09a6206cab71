package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sitebridge/pkg/errors"
)

func TestNewOpenAI(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("OPENAI_API_KEY", "")

		_, err := NewOpenAI("", "")
		require.Error(t, err)
		assert.True(t, errors.IsAPIKeyError(err))
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		p, err := NewOpenAI("", "")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})
}

func TestOpenAIGenerate(t *testing.T) {
	t.Run("returns first choice verbatim", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-4o", req.Model)
			assert.Equal(t, 4000, req.MaxCompletionTokens)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "user", req.Messages[1].Role)

			_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "<html></html>"}}]}`))
		}))
		defer server.Close()

		p, err := NewOpenAI("", server.URL)
		require.NoError(t, err)

		text, err := p.Generate(context.Background(), "you are a web developer", "build a site")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", text)
	})

	t.Run("API failure", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error": {"message": "invalid key"}}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		p, err := NewOpenAI("", server.URL)
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), "s", "u")
		require.Error(t, err)

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "openai", provErr.Provider)
	})

	t.Run("empty choices", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		p, err := NewOpenAI("", server.URL)
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}
