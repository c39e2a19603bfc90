// ABOUTME: Centralized configuration for the Gluteny nutrition coach
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Config holds all configuration for the nutrition coach.
type Config struct {
	// Data directory holding the flat-file stores
	DataDir string

	// OpenAI settings
	OpenAIKey string
	ChatModel string
	Timeout   time.Duration

	// Memory window settings (fixed caps, overridable only for tests)
	RecentMealLimit int
	ReportTailLines int

	// Charm backup settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:         getEnv("GLUTENY_DATA_DIR", defaultDataDir()),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		ChatModel:       getEnv("GLUTENY_OPENAI_MODEL", "gpt-3.5-turbo"),
		Timeout:         getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		RecentMealLimit: 5,
		ReportTailLines: 10,
		CharmHost:       getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:     getEnv("CHARM_DB", "gluteny"),
		AutoSync:        getEnvBool("CHARM_AUTO_SYNC", true),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// defaultDataDir resolves the XDG data directory for the app.
// Respects XDG_DATA_HOME environment variable override for testing.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "gluteny")
}

// Helper functions

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
