package list_submissions

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/service/submissions/models"
)

type SubmissionService interface {
	List(ctx context.Context, filter domain.SubmissionFilter) (*models.Page, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
