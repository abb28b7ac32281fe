package get_calendar

import (
	"context"
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

// SeasonService интерфейс сервиса диапазонов дат
type SeasonService interface {
	Resolve(ctx context.Context, year int) (domain.ResolvedWindow, error)
	Bounds(ctx context.Context) (int, int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
