package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

var window2025 = domain.ResolvedWindow{Year: 2025, Start: "2025-09-20", End: "2025-10-05"}

func TestBuild_MonthsTouchedByWindow(t *testing.T) {
	blocks := Build(2025, window2025, "", false)

	require.Len(t, blocks, 2)
	assert.Equal(t, time.September, blocks[0].Month)
	assert.Equal(t, time.October, blocks[1].Month)
	for _, b := range blocks {
		assert.Equal(t, 2025, b.Year)
	}
}

func TestBuild_GridDividesIntoWeeks(t *testing.T) {
	for _, b := range Build(2025, window2025, "", false) {
		assert.Zero(t, len(b.Cells)%7, "month %s must align to full weeks", b.Month)
	}
}

func TestBuild_SundayFirstAlignment(t *testing.T) {
	blocks := Build(2025, window2025, "", false)

	// September 1, 2025 is a Monday: one leading padding cell.
	sept := blocks[0]
	assert.Equal(t, CellPadding, sept.Cells[0].State)
	assert.Equal(t, 1, sept.Cells[1].Day)

	// October 1, 2025 is a Wednesday: three leading padding cells.
	oct := blocks[1]
	for i := 0; i < 3; i++ {
		assert.Equal(t, CellPadding, oct.Cells[i].State)
	}
	assert.Equal(t, 1, oct.Cells[3].Day)
}

func TestBuild_CellStates(t *testing.T) {
	blocks := Build(2025, window2025, "2025-09-21", false)

	states := make(map[types.DateString]CellState)
	for _, b := range blocks {
		for _, c := range b.Cells {
			if c.Day != 0 {
				states[c.Date] = c.State
			}
		}
	}

	assert.Equal(t, CellSelected, states["2025-09-21"])
	assert.Equal(t, CellSelectable, states["2025-09-20"])
	assert.Equal(t, CellSelectable, states["2025-10-05"])
	assert.Equal(t, CellDisabled, states["2025-09-19"])
	assert.Equal(t, CellDisabled, states["2025-10-06"])

	// Every date strictly inside the window is selectable unless selected.
	for d := types.DateString("2025-09-20"); !d.After("2025-10-05"); d = nextDay(t, d) {
		want := CellSelectable
		if d == "2025-09-21" {
			want = CellSelected
		}
		assert.Equal(t, want, states[d], "date %s", d)
	}
}

func TestBuild_EmptyWindowAllDisabled(t *testing.T) {
	empty := domain.ResolvedWindow{Year: 2024}
	blocks := Build(2024, empty, "", false)

	require.NotEmpty(t, blocks, "the festival months are still rendered")
	for _, b := range blocks {
		for _, c := range b.Cells {
			if c.Day == 0 {
				continue
			}
			assert.Equal(t, CellDisabled, c.State, "date %s", c.Date)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	first := Build(2025, window2025, "2025-09-25", false)
	second := Build(2025, window2025, "2025-09-25", false)
	assert.Equal(t, first, second)
}

func TestBuild_CompactShowsSingleMonth(t *testing.T) {
	tests := []struct {
		name     string
		selected types.DateString
		want     time.Month
	}{
		{"no selection falls back to first month", "", time.September},
		{"selection month wins", "2025-10-03", time.October},
		{"selection outside touched set falls back", "2025-12-24", time.September},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Build(2025, window2025, tt.selected, true)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0].Month)
		})
	}
}

func nextDay(t *testing.T, d types.DateString) types.DateString {
	t.Helper()
	tm, err := d.Time()
	require.NoError(t, err)
	return types.NewDateString(tm.AddDate(0, 0, 1))
}
