package submit_booking

import (
	"context"
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
)

// SubmissionRepository интерфейс репозитория заявок
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.BookingSubmission) (*domain.BookingSubmission, error)
}

// SettingsRepository интерфейс Config Store (redirect после успешной отправки)
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

// TokenVerifier интерфейс проверки form token
type TokenVerifier interface {
	Verify(sessionID, token string) error
}

// TentCatalog интерфейс каталога шатров
type TentCatalog interface {
	Known(ctx context.Context, tentID string) bool
}

// MirrorClient интерфейс клиента External Booking API для зеркалирования заявки
type MirrorClient interface {
	IsConfigured(ctx context.Context) bool
	SubmitBooking(ctx context.Context, payload *bookingapi.BookingPayload) (*bookingapi.BookingResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
