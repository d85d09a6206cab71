package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sitebridge/pkg/constants"
	"github.com/agentstation/sitebridge/pkg/errors"
)

func TestNewOllama(t *testing.T) {
	p := NewOllama("", "")
	assert.Equal(t, "ollama", p.Name())
	assert.Equal(t, constants.DefaultOllamaBaseURL, p.baseURL)
	assert.Equal(t, constants.DefaultOllamaModel, p.model)

	p = NewOllama("llama3", "http://daemon:11434/")
	assert.Equal(t, "llama3", p.model)
	assert.Equal(t, "http://daemon:11434", p.baseURL)
}

func TestOllamaGenerate(t *testing.T) {
	t.Run("combines prompts into one blob", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/generate", r.URL.Path)

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.False(t, req.Stream)
			assert.True(t, strings.HasPrefix(req.Prompt, "system part\n\nuser part"))

			_, _ = w.Write([]byte(`{"response": "<html>generated</html>", "done": true}`))
		}))
		defer server.Close()

		p := NewOllama("qwen2.5-coder:7b", server.URL)
		text, err := p.Generate(context.Background(), "system part", "user part")
		require.NoError(t, err)
		assert.Equal(t, "<html>generated</html>", text)
	})

	t.Run("daemon unreachable", func(t *testing.T) {
		p := NewOllama("", "http://127.0.0.1:1")
		_, err := p.Generate(context.Background(), "s", "u")
		require.Error(t, err)

		var provErr *errors.ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "ollama", provErr.Provider)
	})

	t.Run("empty response text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"response": ""}`))
		}))
		defer server.Close()

		p := NewOllama("", server.URL)
		_, err := p.Generate(context.Background(), "s", "u")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no generated text")
	})
}

func TestProviderFactory(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		_, err := New("grok", Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown provider "grok"`)
	})

	t.Run("ollama needs no credentials", func(t *testing.T) {
		p, err := New(ProviderOllama, Options{Model: "llama3"})
		require.NoError(t, err)
		assert.Equal(t, "ollama", p.Name())
	})

	t.Run("empty name defaults to openai", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		p, err := New("", Options{})
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("gemini without credentials", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("GEMINI_API_KEY", "")
		_, err := New(ProviderGemini, Options{})
		require.Error(t, err)
		assert.True(t, errors.IsAPIKeyError(err))
	})
}
