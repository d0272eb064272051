package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// dotenvFiles in priority order. godotenv never overwrites a variable that is
// already set, so OS env wins, then .env.local, then .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads whichever dotenv files exist and returns their names.
// A file that fails to parse stops loading and is reported in the error.
func LoadDotEnv() ([]string, error) {
	var loaded []string
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return loaded, fmt.Errorf("load %s: %w", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
