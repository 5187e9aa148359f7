package analytics

import (
	"sort"

	"zillowpulse/internal/reshape"
)

// MonthOverMonthChange converts a long table of raw values into a long table
// of month-over-month percent changes.
//
// Within each region, observations are ordered by date and each value is
// compared with the previous month's value. The first observation of a region
// has no predecessor and is dropped. A zero previous value yields a change of
// 0 rather than dividing by zero. Output is ordered by region id, then date.
func MonthOverMonthChange(obs []reshape.Observation) []reshape.Observation {
	grouped := reshape.ByRegion(obs)

	ids := make([]int64, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []reshape.Observation
	for _, id := range ids {
		rows := append([]reshape.Observation(nil), grouped[id]...)
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})

		for i := 1; i < len(rows); i++ {
			change := 0.0
			if prev := rows[i-1].Value; prev != 0 {
				change = (rows[i].Value - prev) / prev * 100
			}
			o := rows[i]
			o.Value = change
			out = append(out, o)
		}
	}

	return out
}
