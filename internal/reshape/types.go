package reshape

import (
	"time"
)

// USCountryRegionID is the Zillow region id of the "United States" aggregate
// row. Region-level rankings exclude it so the country total does not skew
// the results.
const USCountryRegionID = 102001

// Observation is a single row of the long table: one (region, month) pair.
type Observation struct {
	RegionID   int64             `json:"region_id"`
	RegionName string            `json:"region_name"`
	Attrs      map[string]string `json:"attrs,omitempty"` // remaining identifier columns, e.g. StateName
	Date       time.Time         `json:"date"`
	Value      float64           `json:"value"`
}

// Options configures Melt.
type Options struct {
	// IDFields are the identifier columns carried into the long table.
	// Every other column is treated as a date-labeled value column.
	IDFields []string

	// FieldsToDrop are non-identifier columns removed before reshaping.
	// Naming a column that does not exist is an error.
	FieldsToDrop []string

	// ExcludeRegionIDs lists region ids whose rows are dropped before
	// reshaping. There is no hidden default: callers that want the usual
	// country-aggregate exclusion use DefaultOptions.
	ExcludeRegionIDs []int

	// RegionIDField and RegionNameField name the identifier columns holding
	// the region id and display name. Empty values fall back to "RegionID"
	// and "RegionName".
	RegionIDField   string
	RegionNameField string

	// DropMissing drops long rows whose value cell is missing (NaN).
	// Zero values are kept.
	DropMissing bool
}

// DefaultOptions returns a fresh Options with the Zillow column names and the
// country aggregate excluded. The slices are newly allocated on every call so
// callers can append without affecting other callers.
func DefaultOptions() Options {
	return Options{
		IDFields:         []string{"RegionID", "RegionName"},
		ExcludeRegionIDs: []int{USCountryRegionID},
		RegionIDField:    "RegionID",
		RegionNameField:  "RegionName",
		DropMissing:      true,
	}
}

// regionIDField returns the configured region id column name.
func (o Options) regionIDField() string {
	if o.RegionIDField != "" {
		return o.RegionIDField
	}
	return "RegionID"
}

// regionNameField returns the configured region name column name.
func (o Options) regionNameField() string {
	if o.RegionNameField != "" {
		return o.RegionNameField
	}
	return "RegionName"
}
