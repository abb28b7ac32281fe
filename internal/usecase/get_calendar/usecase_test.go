package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/calendar"
	"github.com/everliz/VIP-BookingService/internal/domain"
)

type fakeSeasons struct {
	windows map[int]domain.ResolvedWindow
	min     int
	max     int
}

func (f *fakeSeasons) Resolve(_ context.Context, year int) (domain.ResolvedWindow, error) {
	return f.windows[year], nil
}

func (f *fakeSeasons) Bounds(_ context.Context) (int, int) { return f.min, f.max }

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(seasons *fakeSeasons, now time.Time) *UseCase {
	uc := NewUseCase(seasons, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func seasons2025() *fakeSeasons {
	return &fakeSeasons{
		windows: map[int]domain.ResolvedWindow{
			2025: {Year: 2025, Start: "2025-09-20", End: "2025-10-05"},
		},
		min: 2025,
		max: 2028,
	}
}

func TestExecute_DefaultsSelectionToWindowStart(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, "2025-09-20", resp.Selected.String())
	assert.Len(t, resp.Months, 2) // сентябрь и октябрь
	assert.Equal(t, 2025, resp.MinYear)
	assert.Equal(t, 2028, resp.MaxYear)
}

func TestExecute_ZeroYearClampedIntoBounds(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 2025, resp.Year)
}

func TestExecute_KeepsValidSelection(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Selected: "2025-09-27"})
	require.NoError(t, err)
	assert.Equal(t, "2025-09-27", resp.Selected.String())
}

func TestExecute_ReplacesSelectionOutsideWindow(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	for _, raw := range []string{"2025-08-01", "garbage"} {
		resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Selected: raw})
		require.NoError(t, err)
		assert.Equal(t, "2025-09-20", resp.Selected.String(), "selected=%q", raw)
	}
}

func TestExecute_EmptyWindowAllDisabled(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2040})
	require.NoError(t, err)

	assert.True(t, resp.Window.IsEmpty())
	assert.True(t, resp.Selected.IsZero())
	require.NotEmpty(t, resp.Months)
	for _, month := range resp.Months {
		for _, cell := range month.Cells {
			assert.NotEqual(t, calendar.CellSelectable, cell.State)
			assert.NotEqual(t, calendar.CellSelected, cell.State)
		}
	}
}

func TestExecute_CompactSingleMonth(t *testing.T) {
	uc := newTestUseCase(seasons2025(), time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Selected: "2025-10-02", Compact: true})
	require.NoError(t, err)
	require.Len(t, resp.Months, 1)
	assert.Equal(t, time.October, resp.Months[0].Month)
}
