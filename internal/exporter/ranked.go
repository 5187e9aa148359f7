package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"zillowpulse/internal/analytics"
)

// RankedExporter writes ranked-region tables to report files.
type RankedExporter struct {
	csvWriter *CSVWriter
}

// NewRankedExporter creates a ranked-table exporter.
func NewRankedExporter(csvWriter *CSVWriter) *RankedExporter {
	return &RankedExporter{csvWriter: csvWriter}
}

// WriteCSV writes the ranked regions as a CSV report.
func (e *RankedExporter) WriteCSV(filePath string, ranked []analytics.RegionChange) error {
	records := make([][]string, 0, len(ranked))
	for _, rc := range ranked {
		records = append(records, []string{
			formatInt(rc.RegionID),
			rc.RegionName,
			formatFloat(rc.AvgChange),
			strconv.Itoa(rc.Samples),
		})
	}

	return e.csvWriter.WriteSimpleCSV(filePath,
		[]string{"RegionID", "RegionName", "AvgMoMChange", "Samples"},
		records)
}

// rankedReport is the JSON document shape, mirroring the CSV content with
// report metadata on top.
type rankedReport struct {
	ReportID    string                   `json:"report_id"`
	GeneratedAt string                   `json:"generated_at"`
	Count       int                      `json:"count"`
	Regions     []analytics.RegionChange `json:"regions"`
}

// WriteJSON writes the ranked regions as a JSON report with metadata.
func (e *RankedExporter) WriteJSON(filePath string, ranked []analytics.RegionChange) error {
	slog.Info("writing ranked regions JSON",
		slog.String("path", filePath),
		slog.Int("region_count", len(ranked)))

	if ranked == nil {
		ranked = []analytics.RegionChange{}
	}

	report := rankedReport{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Count:       len(ranked),
		Regions:     ranked,
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
