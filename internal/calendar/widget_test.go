package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

func newTestWidget(t *testing.T, cfg Config) *Widget {
	t.Helper()
	if cfg.DateRanges == nil {
		cfg.DateRanges = []domain.DateRange{
			{Year: 2025, Start: "2025-09-20", End: "2025-10-05"},
		}
	}
	if cfg.MinYear == 0 {
		cfg.MinYear = 2025
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = 2028
	}
	return New(cfg)
}

func TestWidget_InitDefaultsSelectionToWindowStart(t *testing.T) {
	tests := []struct {
		name     string
		selected types.DateString
		want     types.DateString
	}{
		{"missing selection", "", "2025-09-20"},
		{"unparsable selection", "not-a-date", "2025-09-20"},
		{"out-of-window selection", "2025-12-24", "2025-09-20"},
		{"valid in-window selection kept", "2025-09-25", "2025-09-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWidget(t, Config{SelectedDate: tt.selected})
			assert.Equal(t, tt.want, w.SelectedDate())
			assert.Equal(t, tt.want.String(), w.InputValue())
		})
	}
}

func TestWidget_NavigateClampsAtBounds(t *testing.T) {
	w := newTestWidget(t, Config{})
	require.Equal(t, 2025, w.Year())

	// Prev at the lower bound is a no-op, not an error.
	assert.False(t, w.Navigate(Prev))
	assert.Equal(t, 2025, w.Year())

	assert.True(t, w.Navigate(Next))
	assert.Equal(t, 2026, w.Year())

	for w.Year() < 2028 {
		require.True(t, w.Navigate(Next))
	}
	assert.False(t, w.Navigate(Next))
	assert.Equal(t, 2028, w.Year())
}

func TestWidget_NavigatePreservesSelection(t *testing.T) {
	w := newTestWidget(t, Config{SelectedDate: "2025-09-25"})
	w.Navigate(Next)
	w.Navigate(Prev)
	assert.Equal(t, types.DateString("2025-09-25"), w.SelectedDate())
}

func TestWidget_SelectOnlySelectableDates(t *testing.T) {
	var changes []types.DateString
	w := newTestWidget(t, Config{
		OnChange: func(d types.DateString) { changes = append(changes, d) },
	})
	// Initialization synchronizes the default selection once.
	require.Equal(t, []types.DateString{"2025-09-20"}, changes)

	assert.True(t, w.Select("2025-10-01"))
	assert.Equal(t, "2025-10-01", w.InputValue())

	// Disabled, padding-equivalent and garbage dates are all no-ops.
	for _, d := range []types.DateString{"2025-09-19", "2025-10-06", "", "garbage"} {
		assert.False(t, w.Select(d), "date %q", d)
	}
	assert.Equal(t, types.DateString("2025-10-01"), w.SelectedDate())
	assert.Equal(t, []types.DateString{"2025-09-20", "2025-10-01"}, changes)
}

func TestWidget_SelectIsScopedToDisplayedYear(t *testing.T) {
	w := newTestWidget(t, Config{})
	w.Navigate(Next) // 2026, heuristic window

	// The 2025 window no longer accepts selections once the view moved on.
	assert.False(t, w.Select("2025-09-25"))

	window := w.Window()
	assert.True(t, w.Select(window.Start))
	assert.Equal(t, window.Start, w.SelectedDate())
}

func TestWidget_ExplicitStartEndOverridesRanges(t *testing.T) {
	w := New(Config{
		StartDate: "2026-09-19",
		EndDate:   "2026-10-04",
		MinYear:   2025,
		MaxYear:   2028,
	})

	assert.Equal(t, 2026, w.Year())
	assert.Equal(t, types.DateString("2026-09-19"), w.Window().Start)
	assert.Equal(t, types.DateString("2026-09-19"), w.SelectedDate())
}

func TestWidget_CompactGridFollowsSelection(t *testing.T) {
	w := newTestWidget(t, Config{Compact: true, SelectedDate: "2025-10-03"})

	blocks := w.Months()
	require.Len(t, blocks, 1)
	assert.Equal(t, 10, int(blocks[0].Month))
}

func TestWidget_IndependentInstances(t *testing.T) {
	a := newTestWidget(t, Config{})
	b := newTestWidget(t, Config{})

	a.Select("2025-09-30")
	a.Navigate(Next)

	assert.Equal(t, 2025, b.Year())
	assert.Equal(t, types.DateString("2025-09-20"), b.SelectedDate())
}
