// Package chart renders finalized analytics tables with go-echarts. The
// builders do no filtering or sorting of their own; callers hand them tables
// that are already ranked and labeled.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"zillowpulse/internal/analytics"
)

// Config holds the rendering options shared by all charts.
type Config struct {
	Title  string
	Width  string
	Height string
}

// withDefaults fills empty fields with usable values.
func (c Config) withDefaults(title string) Config {
	if c.Title == "" {
		c.Title = title
	}
	if c.Width == "" {
		c.Width = "1200px"
	}
	if c.Height == "" {
		c.Height = "700px"
	}
	return c
}

// TopRegionsBar builds a horizontal bar chart of the ranked regions, highest
// average change at the top.
func TopRegionsBar(ranked []analytics.RegionChange, cfg Config) *charts.Bar {
	cfg = cfg.withDefaults("Top Regions by Average MoM Growth")

	// XYReversal plots the first category at the bottom, so the ranking is
	// fed in reverse to keep the highest value on top.
	names := make([]string, len(ranked))
	data := make([]opts.BarData, len(ranked))
	for i, rc := range ranked {
		j := len(ranked) - 1 - i
		names[j] = rc.RegionName
		data[j] = opts.BarData{Value: rc.AvgChange}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  cfg.Width,
			Height: cfg.Height,
		}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:         "Average Month-over-Month Change (%)",
			NameLocation: "center",
			NameGap:      30,
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "220",
			Bottom: "60",
		}),
	)

	bar.SetXAxis(names).
		AddSeries("Avg MoM change", data).
		XYReversal()

	return bar
}

// RenderTopRegionsBar writes the ranked-regions bar chart as a standalone
// HTML document.
func RenderTopRegionsBar(w io.Writer, ranked []analytics.RegionChange, cfg Config) error {
	return TopRegionsBar(ranked, cfg).Render(w)
}
