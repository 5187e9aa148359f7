package chart

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"zillowpulse/internal/reshape"
)

// RegionLine builds a line chart of a single region's change metric over
// time, chronological left to right. The input slice is not modified.
func RegionLine(obs []reshape.Observation, regionName string, cfg Config) *charts.Line {
	cfg = cfg.withDefaults(fmt.Sprintf("Month-over-Month Home Value Change for %s", regionName))

	rows := append([]reshape.Observation(nil), obs...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	dates := make([]string, len(rows))
	data := make([]opts.LineData, len(rows))
	for i, o := range rows {
		dates[i] = o.Date.Format("2006-01-02")
		data[i] = opts.LineData{Value: o.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
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
			Name:         "Date",
			NameLocation: "center",
			NameGap:      30,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:         "Month-over-Month Change (%)",
			NameLocation: "center",
			NameGap:      50,
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "80",
			Bottom: "60",
		}),
	)

	line.SetXAxis(dates).AddSeries(regionName, data)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}

// RenderRegionLine writes a single region's change history as a standalone
// HTML document.
func RenderRegionLine(w io.Writer, obs []reshape.Observation, regionName string, cfg Config) error {
	return RegionLine(obs, regionName, cfg).Render(w)
}
