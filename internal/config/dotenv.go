package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenvFiles are tried in priority order. godotenv never overwrites a
// variable that is already set, so real OS environment wins over both files
// and .env.local wins over the shared .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads local env files so `go run ./cmd/api` picks up DB and
// Redis credentials without exporting them by hand. Returns the files that
// were actually present.
func LoadDotEnv() []string {
	var found []string
	for _, name := range dotenvFiles {
		if _, err := os.Stat(name); err == nil {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
	return found
}
