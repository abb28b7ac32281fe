package tents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
)

type fakeAPI struct {
	configured bool
	tents      []domain.Tent
	err        error
}

func (f *fakeAPI) IsConfigured(_ context.Context) bool { return f.configured }

func (f *fakeAPI) GetTents(_ context.Context) ([]domain.Tent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tents, nil
}

type fakeCache struct {
	catalog []domain.Tent
	getErr  error
	sets    int
}

func (f *fakeCache) Get(_ context.Context) ([]domain.Tent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.catalog, nil
}

func (f *fakeCache) Set(_ context.Context, tents []domain.Tent, _ time.Duration) error {
	f.catalog = tents
	f.sets++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestCatalog_FromAPIAndCaches(t *testing.T) {
	apiTents := []domain.Tent{{ID: "hofbrau", Name: "Hofbräu Festzelt", Capacity: 10000}}
	api := &fakeAPI{configured: true, tents: apiTents}
	cache := &fakeCache{}
	svc := NewService(api, cache, nopLogger{})

	catalog := svc.Catalog(context.Background())
	assert.Equal(t, apiTents, catalog)
	assert.Equal(t, 1, cache.sets)
}

func TestCatalog_APIDownFallsBackToCache(t *testing.T) {
	cached := []domain.Tent{{ID: "augustiner", Name: "Augustiner-Festhalle"}}
	api := &fakeAPI{configured: true, err: errors.New("timeout")}
	svc := NewService(api, &fakeCache{catalog: cached}, nopLogger{})

	catalog := svc.Catalog(context.Background())
	assert.Equal(t, cached, catalog)
}

func TestCatalog_NeverFails(t *testing.T) {
	api := &fakeAPI{configured: true, err: errors.New("timeout")}
	cache := &fakeCache{getErr: ErrCacheMiss}
	svc := NewService(api, cache, nopLogger{})

	catalog := svc.Catalog(context.Background())
	require.NotEmpty(t, catalog)
	assert.Equal(t, bookingapi.BuiltinTents, catalog)
}

func TestCatalog_NotConfiguredWithoutCache(t *testing.T) {
	svc := NewService(&fakeAPI{}, nil, nopLogger{})

	catalog := svc.Catalog(context.Background())
	assert.Equal(t, bookingapi.BuiltinTents, catalog)
}

func TestKnown(t *testing.T) {
	svc := NewService(&fakeAPI{}, nil, nopLogger{})
	ctx := context.Background()

	assert.True(t, svc.Known(ctx, domain.AnyTentID))
	assert.True(t, svc.Known(ctx, "hofbrau"))
	assert.False(t, svc.Known(ctx, "no-such-tent"))
}
