package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from environment
// variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Generation configuration
	Provider  string
	Model     string
	OllamaURL string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra, applied later)
// 2. Environment variables
// 3. .env files
// 4. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("sitebridge")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind the API keys the LLM providers resolve
	bindAPIKeys()

	return &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no_color"),

		Provider:  viper.GetString("provider"),
		Model:     viper.GetString("model"),
		OllamaURL: viper.GetString("ollama_url"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over environment variables.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files. The same ordered
// candidate list the credential resolver uses, so a key three directories up
// is visible to configuration too. godotenv never overrides variables already
// set in the environment.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindAPIKeys explicitly binds the provider API key environment variables to
// Viper so they are visible regardless of the env prefix.
func bindAPIKeys() {
	apiKeys := []string{
		"OPENAI_API_KEY",
		"GEMINI_API_KEY",
	}

	for _, key := range apiKeys {
		if err := viper.BindEnv(key); err != nil {
			// Not critical; the providers resolve keys themselves
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
