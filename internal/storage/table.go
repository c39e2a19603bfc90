// ABOUTME: Schema-on-read CSV table with versioned header migration
// ABOUTME: Missing optional columns backfill to empty; corrupt files reset on append
package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// ErrCorruptTable marks a log file whose tabular structure cannot be
// parsed. Recovery policy: the next append resets the file to a clean
// header plus the in-flight row, discarding prior content.
var ErrCorruptTable = errors.New("corrupt log file")

// table is one CSV log file. columns is the canonical schema in write
// order; required names must appear in an existing header for the file
// to be considered parsable (the rest backfill to "").
type table struct {
	path     string
	columns  []string
	required []string
}

func newTable(path string, columns, required []string) *table {
	return &table{path: path, columns: columns, required: required}
}

func (t *table) exists() bool {
	_, err := os.Stat(t.path)
	return err == nil
}

// readAll returns every row as a column-name map, backfilling "" for
// columns absent from the on-disk header. A missing file yields
// (nil, nil); an unparsable one yields ErrCorruptTable.
func (t *table) readAll() ([]map[string]string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", t.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	header := raw[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range t.required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: header missing column %q", ErrCorruptTable, name)
		}
	}

	rows := make([]map[string]string, 0, len(raw)-1)
	for _, record := range raw[1:] {
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: row has %d fields, header has %d", ErrCorruptTable, len(record), len(header))
		}
		row := make(map[string]string, len(t.columns))
		for _, name := range t.columns {
			i, ok := index[name]
			if !ok || i >= len(record) {
				// Schema drift: older files lack newer optional columns,
				// short rows lack trailing fields. Both read as empty.
				row[name] = ""
				continue
			}
			row[name] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// migrate rewrites an existing file whose header predates the current
// schema, backfilling the missing columns. Runs once at load.
func (t *table) migrate() error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptTable, err)
	}
	if len(header) == len(t.columns) {
		return nil
	}

	rows, err := t.readAll()
	if err != nil {
		return err
	}
	return t.rewrite(rows)
}

// appendRow adds one row, creating the file with a header when absent.
// An unparsable file is reset to a correct shape: the prior content is
// discarded, the in-flight row is kept, and a warning is logged.
func (t *table) appendRow(row map[string]string) error {
	rows, err := t.readAll()
	if err != nil {
		if !errors.Is(err, ErrCorruptTable) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: %s structure is corrupted, resetting with a clean header: %v\n", t.path, err)
		rows = nil
	}
	rows = append(rows, row)
	return t.rewrite(rows)
}

// deleteWhere removes every row matching pred and rewrites the file.
// No-op when the file does not exist. A corrupt file has nothing
// recoverable to filter, so it resets to a bare header.
func (t *table) deleteWhere(pred func(map[string]string) bool) error {
	if !t.exists() {
		return nil
	}
	rows, err := t.readAll()
	if err != nil {
		if !errors.Is(err, ErrCorruptTable) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: %s structure is corrupted, resetting with a clean header: %v\n", t.path, err)
		rows = nil
	}
	kept := rows[:0]
	for _, row := range rows {
		if !pred(row) {
			kept = append(kept, row)
		}
	}
	return t.rewrite(kept)
}

// rewrite replaces the file with a canonical header plus rows.
func (t *table) rewrite(rows []map[string]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(t.columns))
	for _, row := range rows {
		for i, name := range t.columns {
			record[i] = row[name]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	if err := os.WriteFile(t.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", t.path, err)
	}
	return nil
}
