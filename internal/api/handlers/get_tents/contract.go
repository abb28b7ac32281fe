package get_tents

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type TentService interface {
	Catalog(ctx context.Context) []domain.Tent
}

type Logger interface {
	Info(format string, v ...interface{})
}
