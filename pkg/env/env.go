package env

import "os"

// Get reads an environment variable outside the prefixed config structs
// (platform-provided values like PORT), falling back when unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
