package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application output paths. This is the single source
// of truth for where reports and charts are written.
type Paths struct {
	BaseDir    string
	DataDir    string
	ReportsDir string
	ChartsDir  string
	LogsDir    string

	// Well-known report files
	TopRegionsCSV  string
	TopRegionsJSON string
	TopRegionsHTML string
}

// GetPaths returns the application paths relative to the executable
// location, never the current working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path layout rooted at the given base directory.
//
// base/
//   ├── data/
//   │   ├── reports/   (CSV and JSON reports)
//   │   └── charts/    (rendered HTML charts)
//   └── logs/
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")
	chartsDir := filepath.Join(dataDir, "charts")

	return &Paths{
		BaseDir:    baseDir,
		DataDir:    dataDir,
		ReportsDir: reportsDir,
		ChartsDir:  chartsDir,
		LogsDir:    filepath.Join(baseDir, "logs"),

		TopRegionsCSV:  filepath.Join(reportsDir, "top_regions.csv"),
		TopRegionsJSON: filepath.Join(reportsDir, "top_regions.json"),
		TopRegionsHTML: filepath.Join(chartsDir, "top_regions.html"),
	}
}

// EnsureDirs creates the output directories if they do not exist.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.ChartsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path for a report file name.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetChartPath returns the full path for a chart file name.
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}
