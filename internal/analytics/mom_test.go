package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zillowpulse/internal/reshape"
)

func TestMonthOverMonthChange_SingleRegion(t *testing.T) {
	obs := []reshape.Observation{
		ob(1, "A", "2024-01-31", 100),
		ob(1, "A", "2024-02-29", 110),
		ob(1, "A", "2024-03-31", 99),
	}

	changes := MonthOverMonthChange(obs)
	require.Len(t, changes, 2)

	assert.InDelta(t, 10.0, changes[0].Value, 1e-9)
	assert.InDelta(t, -10.0, changes[1].Value, 1e-9)
	assert.Equal(t, obs[1].Date, changes[0].Date)
	assert.Equal(t, obs[2].Date, changes[1].Date)
}

func TestMonthOverMonthChange_ZeroPrevious(t *testing.T) {
	obs := []reshape.Observation{
		ob(1, "A", "2024-01-31", 0),
		ob(1, "A", "2024-02-29", 50),
	}

	changes := MonthOverMonthChange(obs)
	require.Len(t, changes, 1)
	assert.Equal(t, 0.0, changes[0].Value)
}

func TestMonthOverMonthChange_UnsortedInput(t *testing.T) {
	obs := []reshape.Observation{
		ob(1, "A", "2024-03-31", 121),
		ob(1, "A", "2024-01-31", 100),
		ob(1, "A", "2024-02-29", 110),
	}

	changes := MonthOverMonthChange(obs)
	require.Len(t, changes, 2)
	assert.InDelta(t, 10.0, changes[0].Value, 1e-9)
	assert.InDelta(t, 10.0, changes[1].Value, 1e-9)
}

func TestMonthOverMonthChange_MultipleRegions(t *testing.T) {
	obs := []reshape.Observation{
		ob(2, "B", "2024-01-31", 200),
		ob(2, "B", "2024-02-29", 190),
		ob(1, "A", "2024-01-31", 100),
		ob(1, "A", "2024-02-29", 110),
	}

	changes := MonthOverMonthChange(obs)
	require.Len(t, changes, 2)

	// Output is ordered by region id, then date.
	assert.Equal(t, int64(1), changes[0].RegionID)
	assert.InDelta(t, 10.0, changes[0].Value, 1e-9)
	assert.Equal(t, int64(2), changes[1].RegionID)
	assert.InDelta(t, -5.0, changes[1].Value, 1e-9)
}

func TestMonthOverMonthChange_Empty(t *testing.T) {
	assert.Empty(t, MonthOverMonthChange(nil))
}

func TestMonthOverMonthChange_SingleObservationPerRegion(t *testing.T) {
	obs := []reshape.Observation{
		ob(1, "A", "2024-01-31", 100),
		ob(2, "B", "2024-01-31", 200),
	}
	// No previous month to compare against.
	assert.Empty(t, MonthOverMonthChange(obs))
}
