package analytics

import (
	"sort"
	"time"

	"zillowpulse/internal/reshape"
)

// RegionChange is one ranked row: a region and its average change metric over
// the trailing window.
type RegionChange struct {
	RegionID   int64   `json:"region_id"`
	RegionName string  `json:"region_name"`
	AvgChange  float64 `json:"avg_change"`
	Samples    int     `json:"samples"` // observations inside the window
}

// RankOptions configures TopRegionsByChange.
type RankOptions struct {
	Months int // trailing window length in calendar months
	TopN   int // number of regions to return
}

// DefaultRankOptions returns the standard 12-month, top-25 ranking options.
func DefaultRankOptions() RankOptions {
	return RankOptions{Months: 12, TopN: 25}
}

// TopRegionsByChange returns the TopN regions with the highest average change
// over the trailing window.
//
// The window ends at the latest date present in the data, which keeps the
// result deterministic for a fixed dataset, and starts Months calendar months
// earlier (inclusive). Regions with no observations inside the window are
// absent from the result. Ties keep their input order. Empty input or a
// non-positive TopN yields an empty result, never an error.
func TopRegionsByChange(obs []reshape.Observation, opts RankOptions) []RegionChange {
	if len(obs) == 0 || opts.TopN <= 0 {
		return nil
	}

	end := obs[0].Date
	for _, o := range obs[1:] {
		if o.Date.After(end) {
			end = o.Date
		}
	}
	start := MonthsBefore(end, opts.Months)

	type aggregate struct {
		name  string
		sum   float64
		count int
	}
	totals := make(map[int64]*aggregate)
	var order []int64 // first-appearance order, the tie-break baseline

	for _, o := range obs {
		if o.Date.Before(start) {
			continue
		}
		agg, ok := totals[o.RegionID]
		if !ok {
			agg = &aggregate{name: o.RegionName}
			totals[o.RegionID] = agg
			order = append(order, o.RegionID)
		}
		agg.sum += o.Value
		agg.count++
	}

	ranked := make([]RegionChange, 0, len(order))
	for _, id := range order {
		agg := totals[id]
		ranked = append(ranked, RegionChange{
			RegionID:   id,
			RegionName: agg.name,
			AvgChange:  agg.sum / float64(agg.count),
			Samples:    agg.count,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AvgChange > ranked[j].AvgChange
	})

	if len(ranked) > opts.TopN {
		ranked = ranked[:opts.TopN]
	}
	return ranked
}

// MonthsBefore returns t shifted back by the given number of calendar months.
// When the day of month does not exist in the target month it is clamped to
// that month's last day, so one month before March 31 is the end of February.
func MonthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month-time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if lastDay := firstOfTarget.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// DateRange returns the earliest and latest dates present in the
// observations. ok is false when the input is empty.
func DateRange(obs []reshape.Observation) (start, end time.Time, ok bool) {
	if len(obs) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start, end = obs[0].Date, obs[0].Date
	for _, o := range obs[1:] {
		if o.Date.Before(start) {
			start = o.Date
		}
		if o.Date.After(end) {
			end = o.Date
		}
	}
	return start, end, true
}
