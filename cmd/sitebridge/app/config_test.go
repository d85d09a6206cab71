package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SITEBRIDGE_PROVIDER", "")
		t.Setenv("LOG_FORMAT", "")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Empty(t, config.Provider)
		assert.Empty(t, config.Model)
		assert.Equal(t, "auto", config.LogFormat)
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("SITEBRIDGE_PROVIDER", "ollama")
		t.Setenv("SITEBRIDGE_MODEL", "llama3")
		t.Setenv("SITEBRIDGE_OLLAMA_URL", "http://daemon:11434")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "ollama", config.Provider)
		assert.Equal(t, "llama3", config.Model)
		assert.Equal(t, "http://daemon:11434", config.OllamaURL)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("env file loaded", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
			[]byte("SITEBRIDGE_PROVIDER=gemini\n"), 0o644))
		t.Chdir(dir)
		t.Setenv("SITEBRIDGE_PROVIDER", "")
		// godotenv skips variables already present in the environment, and
		// an empty value counts as present. Unset entirely.
		require.NoError(t, os.Unsetenv("SITEBRIDGE_PROVIDER"))

		config, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "gemini", config.Provider)
	})
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "info", config.LogLevel, "empty flag keeps existing level")

	config.UpdateFromFlags(false, true, false, "error")
	assert.True(t, config.Quiet)
	assert.Equal(t, "error", config.LogLevel)
}
