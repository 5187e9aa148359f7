package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, 12, cfg.Analysis.Months)
	assert.Equal(t, 25, cfg.Analysis.TopN)
	assert.Equal(t, "1200px", cfg.Chart.Width)
	assert.Equal(t, "700px", cfg.Chart.Height)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZPULSE_LOGGING_LEVEL", "debug")
	t.Setenv("ZPULSE_ANALYSIS_MONTHS", "6")
	t.Setenv("ZPULSE_ANALYSIS_TOP_N", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 6, cfg.Analysis.Months)
	assert.Equal(t, 10, cfg.Analysis.TopN)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "ZPULSE_LOGGING_LEVEL", value: "verbose"},
		{name: "bad log format", key: "ZPULSE_LOGGING_FORMAT", value: "xml"},
		{name: "negative months", key: "ZPULSE_ANALYSIS_MONTHS", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewPaths(t *testing.T) {
	base := t.TempDir()
	paths := NewPaths(base)

	assert.Equal(t, base, paths.BaseDir)
	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "data", "charts"), paths.ChartsDir)
	assert.Equal(t, filepath.Join(base, "data", "reports", "top_regions.csv"), paths.TopRegionsCSV)
	assert.Equal(t, filepath.Join(base, "data", "reports", "top_regions.json"), paths.TopRegionsJSON)
	assert.Equal(t, filepath.Join(base, "data", "charts", "top_regions.html"), paths.TopRegionsHTML)
}

func TestPaths_EnsureDirs(t *testing.T) {
	paths := NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirs())

	for _, dir := range []string{paths.DataDir, paths.ReportsDir, paths.ChartsDir, paths.LogsDir} {
		assert.DirExists(t, dir)
	}
}

func TestPaths_Getters(t *testing.T) {
	paths := NewPaths("/base")
	assert.Equal(t, filepath.Join("/base", "data", "reports", "x.csv"), paths.GetReportPath("x.csv"))
	assert.Equal(t, filepath.Join("/base", "data", "charts", "x.html"), paths.GetChartPath("x.html"))
}
