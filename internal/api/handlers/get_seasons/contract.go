package get_seasons

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type SeasonService interface {
	DateRanges(ctx context.Context) ([]domain.DateRange, error)
	Bounds(ctx context.Context) (int, int)
}

type Logger interface {
	Error(format string, v ...interface{})
}
