package reshape

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// columnDateLayouts are the accepted layouts for date-labeled value columns.
// Zillow exports use ISO month-end labels; the rest cover common variants.
var columnDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"1/2/2006",
}

// Melt reshapes a wide table (one value column per month) into long
// observations (one row per region and month).
//
// The steps, in order: drop Options.FieldsToDrop, exclude rows whose region id
// is in Options.ExcludeRegionIDs, then unpivot every column not listed in
// Options.IDFields into a (date, value) pair. Column labels that do not parse
// as dates and referenced columns that do not exist are errors. The input
// DataFrame is never modified; all filtering happens on derived copies.
func Melt(df dataframe.DataFrame, opts Options) ([]Observation, error) {
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("invalid input table: %w", err)
	}

	if len(opts.FieldsToDrop) > 0 {
		dropSet := make(map[string]bool, len(opts.FieldsToDrop))
		for _, name := range opts.FieldsToDrop {
			dropSet[name] = true
		}
		existing := make(map[string]bool, df.Ncol())
		var kept []string
		for _, name := range df.Names() {
			existing[name] = true
			if !dropSet[name] {
				kept = append(kept, name)
			}
		}
		for _, name := range opts.FieldsToDrop {
			if !existing[name] {
				return nil, fmt.Errorf("drop column %q not found in table", name)
			}
		}
		df = df.Select(kept)
		if err := df.Error(); err != nil {
			return nil, fmt.Errorf("drop columns: %w", err)
		}
	}

	for _, id := range opts.ExcludeRegionIDs {
		df = df.Filter(dataframe.F{
			Colname:    opts.regionIDField(),
			Comparator: series.Neq,
			Comparando: id,
		})
		if err := df.Error(); err != nil {
			return nil, fmt.Errorf("exclude region %d: %w", id, err)
		}
	}

	names := df.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	idSet := make(map[string]bool, len(opts.IDFields))
	for _, name := range opts.IDFields {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("id column %q not found in table", name)
		}
		idSet[name] = true
	}

	regionIDIdx, ok := index[opts.regionIDField()]
	if !ok {
		return nil, fmt.Errorf("region id column %q not found in table", opts.regionIDField())
	}
	regionNameIdx := -1
	if i, ok := index[opts.regionNameField()]; ok {
		regionNameIdx = i
	}

	// Attribute columns: id fields beyond the region id and name.
	var attrFields []string
	for _, name := range opts.IDFields {
		if name != opts.regionIDField() && name != opts.regionNameField() {
			attrFields = append(attrFields, name)
		}
	}

	// Resolve every value column's date up front so a malformed label fails
	// before any rows are produced.
	type valueColumn struct {
		index int
		date  time.Time
	}
	var valueCols []valueColumn
	for i, name := range names {
		if idSet[name] {
			continue
		}
		date, err := parseColumnDate(name)
		if err != nil {
			return nil, fmt.Errorf("value column %q: %w", name, err)
		}
		valueCols = append(valueCols, valueColumn{index: i, date: date})
	}

	obs := make([]Observation, 0, df.Nrow()*len(valueCols))
	for r := 0; r < df.Nrow(); r++ {
		regionID, err := df.Elem(r, regionIDIdx).Int()
		if err != nil {
			return nil, fmt.Errorf("region id at row %d: %w", r, err)
		}

		var regionName string
		if regionNameIdx >= 0 {
			regionName = df.Elem(r, regionNameIdx).String()
		}

		var attrs map[string]string
		if len(attrFields) > 0 {
			attrs = make(map[string]string, len(attrFields))
			for _, name := range attrFields {
				attrs[name] = df.Elem(r, index[name]).String()
			}
		}

		for _, vc := range valueCols {
			elem := df.Elem(r, vc.index)
			value := elem.Float()
			if opts.DropMissing && (elem.IsNA() || math.IsNaN(value)) {
				continue
			}
			obs = append(obs, Observation{
				RegionID:   int64(regionID),
				RegionName: regionName,
				Attrs:      attrs,
				Date:       vc.date,
				Value:      value,
			})
		}
	}

	return obs, nil
}

// ByRegion groups observations by region id, preserving their relative order
// within each region.
func ByRegion(obs []Observation) map[int64][]Observation {
	grouped := make(map[int64][]Observation)
	for _, o := range obs {
		grouped[o.RegionID] = append(grouped[o.RegionID], o)
	}
	return grouped
}

// parseColumnDate parses a value-column label into a calendar date.
func parseColumnDate(label string) (time.Time, error) {
	for _, layout := range columnDateLayouts {
		if date, err := time.Parse(layout, label); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date label: %s", label)
}
