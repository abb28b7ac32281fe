package update_submission_status

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type SubmissionService interface {
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
