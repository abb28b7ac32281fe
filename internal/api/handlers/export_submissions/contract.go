package export_submissions

import (
	"context"

	"github.com/xuri/excelize/v2"

	"github.com/everliz/VIP-BookingService/internal/domain"
)

type SubmissionService interface {
	ExportXLSX(ctx context.Context, status *domain.SubmissionStatus) (*excelize.File, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
