package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

func TestResolve_ExplicitRangeReturnedVerbatim(t *testing.T) {
	explicit := RangesByYear([]domain.DateRange{
		{Year: 2025, Start: "2025-09-20", End: "2025-10-05"},
		{Year: 2026, Start: "2026-09-19", End: "2026-10-04"},
	})

	for year, want := range map[int][2]types.DateString{
		2025: {"2025-09-20", "2025-10-05"},
		2026: {"2026-09-19", "2026-10-04"},
	} {
		got := Resolve(year, explicit, 2025, 2028)
		assert.Equal(t, year, got.Year)
		assert.Equal(t, want[0], got.Start)
		assert.Equal(t, want[1], got.End)
	}
}

func TestResolve_HeuristicWithinBounds(t *testing.T) {
	for year := 2025; year <= 2028; year++ {
		got := Resolve(year, nil, 2025, 2028)
		require.False(t, got.IsEmpty(), "year %d", year)

		start, err := got.Start.Time()
		require.NoError(t, err)
		end, err := got.End.Time()
		require.NoError(t, err)

		assert.Equal(t, time.Saturday, start.Weekday(), "year %d start must be a Saturday", year)
		assert.Equal(t, time.September, start.Month())
		assert.GreaterOrEqual(t, start.Day(), 15)
		assert.Equal(t, 16*24*time.Hour, end.Sub(start), "year %d run length", year)
	}
}

func TestResolve_Heuristic2025(t *testing.T) {
	// September 15, 2025 is a Monday; the first Saturday on or after it is the
	// 20th.
	got := Resolve(2025, nil, 2025, 2028)
	assert.Equal(t, types.DateString("2025-09-20"), got.Start)
	assert.Equal(t, types.DateString("2025-10-06"), got.End)
}

func TestResolve_OutsideBoundsIsEmpty(t *testing.T) {
	for _, year := range []int{2024, 2029, 1999, 2100} {
		got := Resolve(year, nil, 2025, 2028)
		assert.True(t, got.IsEmpty(), "year %d", year)
		assert.Equal(t, year, got.Year)
	}
}

func TestResolve_ExplicitRangeWinsOverBounds(t *testing.T) {
	// An explicit range is honored even for a year outside the bounds.
	explicit := RangesByYear([]domain.DateRange{
		{Year: 2030, Start: "2030-09-21", End: "2030-10-06"},
	})
	got := Resolve(2030, explicit, 2025, 2028)
	assert.False(t, got.IsEmpty())
	assert.Equal(t, types.DateString("2030-09-21"), got.Start)
}

func TestRangesByYear_LastWriteWins(t *testing.T) {
	byYear := RangesByYear([]domain.DateRange{
		{Year: 2025, Start: "2025-09-01", End: "2025-09-10"},
		{Year: 2025, Start: "2025-09-20", End: "2025-10-05"},
	})
	require.Len(t, byYear, 1)
	assert.Equal(t, types.DateString("2025-09-20"), byYear[2025].Start)
}
