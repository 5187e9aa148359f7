// Package exporter writes analysis results to CSV and JSON report files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"zillowpulse/internal/config"
)

// CSVWriter provides CSV export functionality.
type CSVWriter struct {
	paths *config.Paths
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(paths *config.Paths) *CSVWriter {
	return &CSVWriter{paths: paths}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteSimpleCSV writes a CSV file with headers, records and a BOM prefix.
func (w *CSVWriter) WriteSimpleCSV(filePath string, headers []string, records [][]string) error {
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// resolvePath resolves a file name against the reports directory. Absolute
// paths pass through unchanged.
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.paths == nil {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
