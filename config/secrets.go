package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consulted by LoadSecrets.
const (
	EnvAPIKey     = "FIRESIGHT_API_KEY"
	EnvServiceURL = "FIRESIGHT_SERVICE_URL"
)

// LoadSecrets fills credentials from the process environment. When envFile is
// non-empty and exists it is loaded first; variables already set in the
// environment win over the file.
func (c *Config) LoadSecrets(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvServiceURL); v != "" {
		c.ServiceURL = v
	}
	return nil
}

// RequiresAPIKey reports whether the selected provider authenticates with a static key.
func (c *Config) RequiresAPIKey() bool {
	switch c.Provider {
	case ProviderWatson, ProviderGemini:
		return true
	default:
		return false
	}
}
