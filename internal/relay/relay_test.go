package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sitebridge/pkg/errors"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		endpoint string
		want     string
	}{
		{"relative endpoint", "http://x", "products", "http://x/products"},
		{"absolute endpoint", "http://x", "/products", "http://x/products"},
		{"trailing slash base", "http://x/", "products", "http://x/products"},
		{"both separators", "http://x/", "/products", "http://x/products"},
		{"nested path", "http://x", "/cart/items", "http://x/cart/items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.baseURL, tt.endpoint))
		})
	}
}

func TestCall(t *testing.T) {
	t.Run("success with params", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products", r.URL.Path)
			assert.Equal(t, "milk", r.URL.Query().Get("q"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"products": [{"id": 1, "name": "Milk"}]}`))
		}))
		defer server.Close()

		result, err := New().Call(context.Background(), server.URL, "products", map[string]any{
			"q":     "milk",
			"limit": float64(5), // decoded JSON numbers arrive as float64
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.JSONEq(t, `{"products": [{"id": 1, "name": "Milk"}]}`, string(result.Data))
	})

	t.Run("404 path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := New().Call(context.Background(), server.URL, "/missing", nil)
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("non-JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("plain text"))
		}))
		defer server.Close()

		_, err := New().Call(context.Background(), server.URL, "/text", nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidInput(err))
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := New().Call(context.Background(), "http://127.0.0.1:1", "/products", nil)
		require.Error(t, err)
	})
}
