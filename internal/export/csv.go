// Package export renders filtered collections to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Column maps one CSV column to a value extracted from the record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes a header row followed by one row per item.
func WriteCSV[T any](w io.Writer, columns []Column[T], items []T) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	row := make([]string, len(columns))
	for _, item := range items {
		for i, col := range columns {
			row[i] = col.Value(item)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV into dir under name, creating dir as needed, and
// returns the full path.
func WriteFile[T any](dir, name string, columns []Column[T], items []T) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, columns, items); err != nil {
		return "", err
	}
	return path, nil
}

// Amount formats a monetary value with two decimals.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Date formats a timestamp using layout, empty when the time is zero.
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
