package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"zillowpulse/internal/analytics"
	"zillowpulse/internal/chart"
	"zillowpulse/internal/config"
	"zillowpulse/internal/dataset"
	"zillowpulse/internal/exporter"
	"zillowpulse/internal/infrastructure"
	"zillowpulse/internal/reshape"
)

func main() {
	dataPath := flag.String("data", "", "path to a wide-format Zillow dataset (.csv or .xlsx)")
	sheet := flag.String("sheet", "", "worksheet name for Excel input (auto-detected when empty)")
	months := flag.Int("months", 0, "trailing window length in months (defaults to config)")
	topN := flag.Int("top", 0, "number of regions to report (defaults to config)")
	region := flag.String("region", "", "also render a line chart for this region name")
	outputDir := flag.String("out", "", "output directory (defaults to data/ next to the executable)")
	computeMoM := flag.Bool("compute-mom", true, "derive month-over-month change from raw values")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if *dataPath == "" {
		slog.Error("Missing required -data flag")
		flag.Usage()
		os.Exit(1)
	}

	var paths *config.Paths
	if *outputDir != "" {
		paths = config.NewPaths(*outputDir)
	} else {
		paths, err = config.GetPaths()
		if err != nil {
			slog.Error("Failed to initialize paths", "error", err)
			os.Exit(1)
		}
	}
	if err := paths.EnsureDirs(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	wide, err := loadDataset(*dataPath, *sheet)
	if err != nil {
		slog.Error("Failed to load dataset", "path", *dataPath, "error", err)
		os.Exit(1)
	}

	obs, err := reshape.Melt(wide, reshape.DefaultOptions())
	if err != nil {
		slog.Error("Failed to reshape dataset", "error", err)
		os.Exit(1)
	}
	slog.Info("Reshaped dataset to long form", "observations", len(obs))

	if *computeMoM {
		obs = analytics.MonthOverMonthChange(obs)
		slog.Info("Computed month-over-month change", "observations", len(obs))
	}

	if start, end, ok := analytics.DateRange(obs); ok {
		slog.Info("Observation date range",
			"start", start.Format("2006-01-02"),
			"end", end.Format("2006-01-02"))
	}

	rankOpts := analytics.RankOptions{Months: cfg.Analysis.Months, TopN: cfg.Analysis.TopN}
	if *months > 0 {
		rankOpts.Months = *months
	}
	if *topN > 0 {
		rankOpts.TopN = *topN
	}

	ranked := analytics.TopRegionsByChange(obs, rankOpts)
	if len(ranked) == 0 {
		slog.Warn("No regions qualified for ranking",
			"months", rankOpts.Months,
			"top_n", rankOpts.TopN)
	}

	exp := exporter.NewRankedExporter(exporter.NewCSVWriter(paths))
	if err := exp.WriteCSV(paths.TopRegionsCSV, ranked); err != nil {
		slog.Error("Failed to write ranked CSV", "error", err)
		os.Exit(1)
	}
	if err := exp.WriteJSON(paths.TopRegionsJSON, ranked); err != nil {
		slog.Error("Failed to write ranked JSON", "error", err)
		os.Exit(1)
	}

	chartCfg := chart.Config{Width: cfg.Chart.Width, Height: cfg.Chart.Height}
	if err := renderBarChart(paths.TopRegionsHTML, ranked, chartCfg); err != nil {
		slog.Error("Failed to render bar chart", "error", err)
		os.Exit(1)
	}
	slog.Info("Wrote ranked-regions report",
		"csv", paths.TopRegionsCSV,
		"json", paths.TopRegionsJSON,
		"chart", paths.TopRegionsHTML)

	if *region != "" {
		if err := renderRegionChart(paths, obs, *region, chartCfg); err != nil {
			slog.Error("Failed to render region chart", "region", *region, "error", err)
			os.Exit(1)
		}
	}
}

// loadDataset picks the loader from the file extension.
func loadDataset(path, sheet string) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return dataset.LoadWideExcel(path, sheet)
	case ".csv":
		return dataset.LoadWideCSV(path)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unsupported dataset format: %s", path)
	}
}

// renderBarChart writes the top-regions bar chart to an HTML file.
func renderBarChart(path string, ranked []analytics.RegionChange, cfg chart.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	return chart.RenderTopRegionsBar(file, ranked, cfg)
}

// renderRegionChart writes a single region's change history to an HTML file.
func renderRegionChart(paths *config.Paths, obs []reshape.Observation, region string, cfg chart.Config) error {
	var regionObs []reshape.Observation
	for _, o := range obs {
		if strings.EqualFold(o.RegionName, region) {
			regionObs = append(regionObs, o)
		}
	}
	if len(regionObs) == 0 {
		slog.Warn("No observations found for region", "region", region)
		return nil
	}

	slug := strings.ReplaceAll(strings.ToLower(region), " ", "_")
	path := paths.GetChartPath(fmt.Sprintf("region_%s.html", slug))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer file.Close()

	if err := chart.RenderRegionLine(file, regionObs, regionObs[0].RegionName, cfg); err != nil {
		return err
	}
	slog.Info("Wrote region chart", "region", region, "chart", path)
	return nil
}
