package get_booking_context

import (
	"context"

	getBookingContext "github.com/everliz/VIP-BookingService/internal/usecase/get_booking_context"
)

type GetBookingContextUseCase interface {
	Execute(ctx context.Context, req *getBookingContext.Request) (*getBookingContext.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
