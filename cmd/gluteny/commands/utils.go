// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Session bootstrap and small display helpers
package commands

import (
	"fmt"

	"github.com/gluteny/gluteny/internal/config"
	"github.com/gluteny/gluteny/internal/core"
	"github.com/gluteny/gluteny/internal/storage"
	"github.com/joho/godotenv"
)

// newSession loads env, config, and storage and returns a ready
// session plus the config used to build it.
func newSession() (*core.Session, *config.Config, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	session, err := core.NewSession(store)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing session: %w", err)
	}
	return session, cfg, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// requireUser validates that the session knows the named user.
func requireUser(session *core.Session, name string) error {
	if !session.HasUser(name) {
		return fmt.Errorf("unknown user %q (add one with 'gluteny users add')", name)
	}
	return nil
}
