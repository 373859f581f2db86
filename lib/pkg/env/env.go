// Package env loads configuration from the process environment, with an
// optional .env file picked up from the working directory or any parent.
//
// All configuration is read once at startup; required variables abort the
// process before any interaction happens.
package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Probe a ladder of relative paths so binaries run from cmd/* subdirs
	// still find the repo-level .env. Missing .env is fine: CI and prod
	// configure the environment directly.
	paths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func Check(key string, description string) {
	if os.Getenv(key) == "" {
		panic(fmt.Sprintf("environment variable %s must not be empty: %s", key, description))
	}
}

func String(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func MustString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("environment variable %s must not be empty", key))
	}
	return value
}

func Int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

func Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true"
}

func IsDebug() bool {
	return Bool("DEBUG", false)
}

// IsCompat reports whether the hand-rolled Chat Completions adapter is
// selected. That model does not stream, so callers driving a runner must
// use streaming mode none.
func IsCompat() bool {
	return Bool("OPENAI_COMPAT", false)
}
