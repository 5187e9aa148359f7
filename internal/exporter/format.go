package exporter

import (
	"fmt"
)

// formatFloat formats a change metric for CSV output with four decimal
// places so small month-over-month percentages survive the round trip.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats an int64 value for CSV output.
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}
