package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sitebridge/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("provider", "ollama").Msg("generating")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generating", entry["message"])
	assert.Equal(t, "ollama", entry["provider"])
	assert.Contains(t, entry, "time")
}

func TestDefaultIsNonNil(t *testing.T) {
	require.NotNil(t, logging.Default())
}

func TestFromContext(t *testing.T) {
	t.Run("returns default without logger", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		logging.Ctx(ctx).Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("with provider field", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)
		ctx = logging.WithProvider(ctx, "openai")

		logging.Ctx(ctx).Info().Msg("hi")
		assert.Contains(t, buf.String(), `"provider":"openai"`)
	})
}
