package llm

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFilePaths is the ordered list of .env candidates consulted when a
// credential is absent from the process environment: the working directory and
// up to three parent directories. The order is significant; the first file
// containing the key wins.
var DefaultEnvFilePaths = []string{".env", "../.env", "../../.env", "../../../.env"}

// ResolveKey returns the value for key, checking the process environment
// first and then each candidate .env file in order. Unreadable files are
// skipped. Surrounding quotes in file values are stripped by the env parser.
func ResolveKey(key string, paths []string) (string, bool) {
	if value := os.Getenv(key); value != "" {
		return value, true
	}

	for _, path := range paths {
		env, err := godotenv.Read(path)
		if err != nil {
			continue
		}
		if value, ok := env[key]; ok && value != "" {
			return value, true
		}
	}

	return "", false
}
