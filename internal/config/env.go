package config

import "os"

// Environment variables that supply CLI flag defaults.
const (
	EnvDBPath     = "FROGGY_DB"
	EnvConfigPath = "FROGGY_CONFIG"
	EnvLogPath    = "FROGGY_LOG"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
