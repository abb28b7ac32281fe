package seasons

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
)

// SettingsRepository интерфейс Config Store
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	ListDateRanges(ctx context.Context) ([]domain.DateRange, error)
}

// SeasonsAPI интерфейс клиента External Booking API
type SeasonsAPI interface {
	IsConfigured(ctx context.Context) bool
	GetSeasons(ctx context.Context) ([]bookingapi.SeasonRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
