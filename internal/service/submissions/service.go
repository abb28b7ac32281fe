// Package submissions отвечает за работу админки с заявками: просмотр,
// смена статуса, выгрузка в xlsx
package submissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/everliz/VIP-BookingService/internal/domain"
	storage "github.com/everliz/VIP-BookingService/internal/infra/storage/submission"
	"github.com/everliz/VIP-BookingService/internal/service/submissions/models"
)

// Service сервис заявок
type Service struct {
	repo   SubmissionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo SubmissionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает страницу заявок с общим количеством
// Лимит нормализуется к [1, MaxPageSize], отрицательный offset обнуляется
func (s *Service) List(ctx context.Context, filter domain.SubmissionFilter) (*models.Page, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultPageSize
	}
	if filter.Limit > domain.MaxPageSize {
		filter.Limit = domain.MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: count error: %v", err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	return &models.Page{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// Get возвращает заявку по id
func (s *Service) Get(ctx context.Context, id int64) (*domain.BookingSubmission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSubmissionNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return submission, nil
}

// UpdateStatus переводит заявку в новый статус
// Переходы между статусами не ограничены
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error {
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: UpdateStatus - %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrSubmissionNotFound) {
			return ErrSubmissionNotFound
		}
		s.logger.Error("UpdateStatus: repository error: %v", err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: submission %d -> %s", id, status)
	return nil
}

var exportHeader = []string{
	"ID", "Reference", "Date", "Attendees", "Session", "Tent",
	"First Name", "Last Name", "Email", "Phone", "Company",
	"Message", "Newsletter", "Status", "Submitted At",
}

// ExportXLSX выгружает заявки (с учетом фильтра по статусу, без пагинации)
// в книгу xlsx с одним листом
func (s *Service) ExportXLSX(ctx context.Context, status *domain.SubmissionStatus) (*excelize.File, error) {
	filter := domain.SubmissionFilter{
		Status: status,
		Limit:  domain.MaxPageSize,
	}

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := book.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("%w: ExportXLSX - header: %v", ErrInternal, err)
		}
	}

	row := 2
	for {
		items, err := s.repo.List(ctx, filter)
		if err != nil {
			s.logger.Error("ExportXLSX: repository error: %v", err)
			return nil, fmt.Errorf("%w: ExportXLSX - repository error: %v", ErrInternal, err)
		}
		for _, item := range items {
			if err := s.writeRow(book, sheet, row, item); err != nil {
				return nil, err
			}
			row++
		}
		if len(items) < filter.Limit {
			break
		}
		filter.Offset += filter.Limit
	}

	s.logger.Info("ExportXLSX: exported %d submissions", row-2)
	return book, nil
}

func (s *Service) writeRow(book *excelize.File, sheet string, row int, item *domain.BookingSubmission) error {
	tent := item.SelectedTent
	if !item.WantsSpecificTent() {
		tent = domain.AnyTentID
	}
	values := []interface{}{
		item.ID,
		item.Reference,
		item.SelectedDate.String(),
		item.AttendeeCount,
		string(item.Session),
		tent,
		item.FirstName,
		item.LastName,
		item.Email,
		item.Phone,
		deref(item.Company),
		deref(item.Message),
		item.NewsletterOptIn,
		string(item.Status),
		item.SubmittedAt.Format("2006-01-02 15:04:05"),
	}
	for col, value := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		if err := book.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("%w: writeRow - cell %s: %v", ErrInternal, cell, err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
