package seasons

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
)

type fakeSettings struct {
	values map[string]string
	ranges []domain.DateRange
	err    error
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", settings.ErrSettingNotFound
}

func (f *fakeSettings) ListDateRanges(_ context.Context) ([]domain.DateRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges, nil
}

type fakeAPI struct {
	configured bool
	seasons    []bookingapi.SeasonRange
	err        error
}

func (f *fakeAPI) IsConfigured(_ context.Context) bool { return f.configured }

func (f *fakeAPI) GetSeasons(_ context.Context) ([]bookingapi.SeasonRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.seasons, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDateRanges_APIPreferred(t *testing.T) {
	api := &fakeAPI{
		configured: true,
		seasons: []bookingapi.SeasonRange{
			{Year: 2026, StartDate: "2026-09-19", EndDate: "2026-10-04"},
		},
	}
	store := &fakeSettings{ranges: []domain.DateRange{{Year: 2025, Start: "2025-09-20", End: "2025-10-05"}}}
	svc := NewService(store, api, nopLogger{})

	ranges, err := svc.DateRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2026, ranges[0].Year)
	assert.Equal(t, "2026-09-19", ranges[0].Start.String())
}

func TestDateRanges_APIErrorFallsBackToStore(t *testing.T) {
	api := &fakeAPI{configured: true, err: errors.New("timeout")}
	store := &fakeSettings{ranges: []domain.DateRange{{Year: 2025, Start: "2025-09-20", End: "2025-10-05"}}}
	svc := NewService(store, api, nopLogger{})

	ranges, err := svc.DateRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2025, ranges[0].Year)
}

func TestDateRanges_SkipsMalformedAPIEntries(t *testing.T) {
	api := &fakeAPI{
		configured: true,
		seasons: []bookingapi.SeasonRange{
			{Year: 2026, StartDate: "not-a-date", EndDate: "2026-10-04"},
			{Year: 2027, StartDate: "2027-10-04", EndDate: "2027-09-18"},
			{Year: 2028, StartDate: "2028-09-16", EndDate: "2028-10-01"},
		},
	}
	svc := NewService(&fakeSettings{}, api, nopLogger{})

	ranges, err := svc.DateRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2028, ranges[0].Year)
}

func TestDateRanges_SkipsCrossYearAPIEntries(t *testing.T) {
	api := &fakeAPI{
		configured: true,
		seasons: []bookingapi.SeasonRange{
			{Year: 2026, StartDate: "2026-12-20", EndDate: "2027-01-05"},
			{Year: 2027, StartDate: "2026-09-19", EndDate: "2026-10-04"},
			{Year: 2028, StartDate: "2028-09-16", EndDate: "2028-10-01"},
		},
	}
	svc := NewService(&fakeSettings{}, api, nopLogger{})

	ranges, err := svc.DateRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2028, ranges[0].Year)
}

func TestDateRanges_EmptyStoreUsesDefault(t *testing.T) {
	svc := NewService(&fakeSettings{}, &fakeAPI{}, nopLogger{})

	ranges, err := svc.DateRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2025, ranges[0].Year)
	assert.Equal(t, "2025-09-20", ranges[0].Start.String())
	assert.Equal(t, "2025-10-05", ranges[0].End.String())
}

func TestDateRanges_StoreError(t *testing.T) {
	store := &fakeSettings{err: errors.New("connection refused")}
	svc := NewService(store, &fakeAPI{}, nopLogger{})

	_, err := svc.DateRanges(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestBounds_Defaults(t *testing.T) {
	svc := NewService(&fakeSettings{}, &fakeAPI{}, nopLogger{})

	minYear, maxYear := svc.Bounds(context.Background())
	assert.Equal(t, domain.DefaultMinYear, minYear)
	assert.Equal(t, domain.DefaultMaxYear, maxYear)
}

func TestBounds_FromStore(t *testing.T) {
	store := &fakeSettings{values: map[string]string{
		settings.KeyMinYear: "2026",
		settings.KeyMaxYear: "2030",
	}}
	svc := NewService(store, &fakeAPI{}, nopLogger{})

	minYear, maxYear := svc.Bounds(context.Background())
	assert.Equal(t, 2026, minYear)
	assert.Equal(t, 2030, maxYear)
}

func TestBounds_InvertedFallsBackToDefaults(t *testing.T) {
	store := &fakeSettings{values: map[string]string{
		settings.KeyMinYear: "2030",
		settings.KeyMaxYear: "2026",
	}}
	svc := NewService(store, &fakeAPI{}, nopLogger{})

	minYear, maxYear := svc.Bounds(context.Background())
	assert.Equal(t, domain.DefaultMinYear, minYear)
	assert.Equal(t, domain.DefaultMaxYear, maxYear)
}

func TestResolve_ExplicitRange(t *testing.T) {
	store := &fakeSettings{ranges: []domain.DateRange{{Year: 2025, Start: "2025-09-20", End: "2025-10-05"}}}
	svc := NewService(store, &fakeAPI{}, nopLogger{})

	window, err := svc.Resolve(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-20", window.Start.String())
	assert.Equal(t, "2025-10-05", window.End.String())
}

func TestResolve_HeuristicForUnlistedYear(t *testing.T) {
	store := &fakeSettings{ranges: []domain.DateRange{{Year: 2025, Start: "2025-09-20", End: "2025-10-05"}}}
	svc := NewService(store, &fakeAPI{}, nopLogger{})

	window, err := svc.Resolve(context.Background(), 2026)
	require.NoError(t, err)
	require.False(t, window.IsEmpty())
	// 19 сентября 2026 - первая суббота начиная с 15-го
	assert.Equal(t, "2026-09-19", window.Start.String())
	assert.Equal(t, "2026-10-05", window.End.String())
}

func TestResolve_OutOfBoundsIsEmpty(t *testing.T) {
	svc := NewService(&fakeSettings{}, &fakeAPI{}, nopLogger{})

	window, err := svc.Resolve(context.Background(), 2040)
	require.NoError(t, err)
	assert.True(t, window.IsEmpty())
}
