package get_booking_context

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

// SeasonService интерфейс сервиса диапазонов дат
type SeasonService interface {
	Resolve(ctx context.Context, year int) (domain.ResolvedWindow, error)
}

// TentCatalog интерфейс каталога шатров
type TentCatalog interface {
	Known(ctx context.Context, tentID string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
