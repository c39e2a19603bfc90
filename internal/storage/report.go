// ABOUTME: Report memory blob: append-only text from uploaded health reports
// ABOUTME: Deployment-global (not per-user), read back whole or as a tail window
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppendReport appends trimmed report text to the blob, separated from
// prior content by a blank line.
func (s *Store) AppendReport(text string) error {
	path := filepath.Join(s.dataDir, reportFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open report file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n\n" + strings.TrimSpace(text)); err != nil {
		return fmt.Errorf("failed to append report text: %w", err)
	}
	return nil
}

// HasReport reports whether any report text has been stored.
func (s *Store) HasReport() bool {
	_, err := os.Stat(filepath.Join(s.dataDir, reportFile))
	return err == nil
}

// ReportText returns the full report blob, or "" when absent.
func (s *Store) ReportText() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, reportFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read report file: %w", err)
	}
	return string(data), nil
}

// ReportTail returns the last n lines of the report blob. An absent
// file yields nil.
func (s *Store) ReportTail(n int) ([]string, error) {
	text, err := s.ReportText()
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
