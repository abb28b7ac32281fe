package submissions

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

// SubmissionRepository интерфейс хранилища заявок
type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingSubmission, error)
	List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.BookingSubmission, error)
	Count(ctx context.Context, filter domain.SubmissionFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
