// ABOUTME: User profile store backed by a single JSON file
// ABOUTME: Whole-file overwrite on every save, keyed uniquely by user name
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadProfiles reads the profile map from disk. A missing file yields
// an empty map.
func (s *Store) LoadProfiles() (map[string]string, error) {
	path := filepath.Join(s.dataDir, profileFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	profiles := map[string]string{}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	return profiles, nil
}

// SaveProfiles overwrites the profile file with the given map.
func (s *Store) SaveProfiles(profiles map[string]string) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	path := filepath.Join(s.dataDir, profileFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}
	return nil
}
