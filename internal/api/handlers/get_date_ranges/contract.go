package get_date_ranges

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type SettingsRepository interface {
	ListDateRanges(ctx context.Context) ([]domain.DateRange, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
