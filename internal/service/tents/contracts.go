package tents

import (
	"context"
	"time"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

// TentsAPI интерфейс клиента External Booking API
type TentsAPI interface {
	IsConfigured(ctx context.Context) bool
	GetTents(ctx context.Context) ([]domain.Tent, error)
}

// Cache интерфейс кеша каталога шатров
type Cache interface {
	Get(ctx context.Context) ([]domain.Tent, error)
	Set(ctx context.Context, tents []domain.Tent, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
