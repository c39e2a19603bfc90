// ABOUTME: Main storage implementation for the Gluteny flat-file record store
// ABOUTME: Owns the meal log, symptom log, profile store, and report blob paths
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names inside the data directory. The layout is schema-on-read:
// callers never see the files directly, only records.
const (
	mealLogFile    = "meal_log.csv"
	symptomLogFile = "symptom_log.csv"
	profileFile    = "user_profiles.json"
	reportFile     = "report_memory.txt"
)

// Store manages all persisted data: two append-only CSV logs, a JSON
// profile map, and an unbounded report text blob. There is no locking
// discipline; the hosting session serializes interactions.
type Store struct {
	dataDir  string
	meals    *table
	symptoms *table
}

// NewStore initializes the store under dataDir, creating the directory
// if needed and migrating drifted log files once at load.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	s := &Store{
		dataDir:  dataDir,
		meals:    newTable(filepath.Join(dataDir, mealLogFile), mealColumns, mealRequired),
		symptoms: newTable(filepath.Join(dataDir, symptomLogFile), symptomColumns, symptomRequired),
	}

	// One-time schema backfill for files written before the symptoms and
	// notes columns existed. A corrupt file is left alone here; the
	// reset-with-header recovery runs on the next append, which has an
	// in-flight record to preserve.
	for _, t := range []*table{s.meals, s.symptoms} {
		if err := t.migrate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s is not parsable, will be reset on next write: %v\n", filepath.Base(t.path), err)
		}
	}

	return s, nil
}

// DataDir returns the directory holding the flat files.
func (s *Store) DataDir() string {
	return s.dataDir
}

// DataFiles lists the flat files the store may own, existing or not.
func (s *Store) DataFiles() []string {
	return []string{
		filepath.Join(s.dataDir, mealLogFile),
		filepath.Join(s.dataDir, symptomLogFile),
		filepath.Join(s.dataDir, profileFile),
		filepath.Join(s.dataDir, reportFile),
	}
}

// HasMealLog reports whether the meal log file exists yet.
func (s *Store) HasMealLog() bool {
	return s.meals.exists()
}

// HasSymptomLog reports whether the symptom log file exists yet.
func (s *Store) HasSymptomLog() bool {
	return s.symptoms.exists()
}
