package update_date_ranges

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type SettingsRepository interface {
	ReplaceDateRanges(ctx context.Context, ranges []domain.DateRange) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
