package submission

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/dbmetrics"
	"github.com/everliz/VIP-BookingService/pkg/psqlbuilder"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// submissionColumns полный набор колонок таблицы booking_submissions
var submissionColumns = []string{
	"id",
	"reference",
	"selected_date",
	"attendee_count",
	"session",
	"tent_preference",
	"selected_tent",
	"first_name",
	"last_name",
	"email",
	"phone",
	"company",
	"message",
	"newsletter_opt_in",
	"status",
	"submitted_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
// Вставка одной строки атомарна сама по себе, транзакция не требуется;
// если в контексте есть активная транзакция, запрос выполняется в ней
func (r *Repository) Create(ctx context.Context, s *domain.BookingSubmission) (*domain.BookingSubmission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_submissions").
		Columns(
			"reference",
			"selected_date",
			"attendee_count",
			"session",
			"tent_preference",
			"selected_tent",
			"first_name",
			"last_name",
			"email",
			"phone",
			"company",
			"message",
			"newsletter_opt_in",
			"status",
			"submitted_at",
		).
		Values(
			s.Reference,
			s.SelectedDate,
			s.AttendeeCount,
			s.Session,
			s.TentPreference,
			s.SelectedTent,
			s.FirstName,
			s.LastName,
			s.Email,
			s.Phone,
			s.Company,
			s.Message,
			s.NewsletterOptIn,
			s.Status,
			s.SubmittedAt,
		).
		Suffix("RETURNING id, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingSubmission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(submissionColumns...).
		From("booking_submissions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSubmission(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan submission: %v", ErrScanRow, err)
	}
	return s, nil
}

// List получает заявки с фильтрацией по статусу и пагинацией
// Сортировка: сначала новые
func (r *Repository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.BookingSubmission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}

	selectBuilder := psqlbuilder.Select(submissionColumns...).
		From("booking_submissions").
		OrderBy("submitted_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset))

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	submissions := make([]*domain.BookingSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return submissions, nil
}

// Count возвращает количество заявок, подходящих под фильтр
// Используется для пагинации в админском списке
func (r *Repository) Count(ctx context.Context, filter domain.SubmissionFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("booking_submissions")
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// UpdateStatus обновляет статус заявки
// Переходы между статусами свободные, порядок не контролируется
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SubmissionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_submissions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSubmission сканирует одну строку в доменную модель
// Колонка selected_date имеет тип DATE, поэтому сканируется через time.Time
func scanSubmission(row rowScanner) (*domain.BookingSubmission, error) {
	var s domain.BookingSubmission
	var selectedDate time.Time
	var submittedAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Reference,
		&selectedDate,
		&s.AttendeeCount,
		&s.Session,
		&s.TentPreference,
		&s.SelectedTent,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Company,
		&s.Message,
		&s.NewsletterOptIn,
		&s.Status,
		&submittedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.SelectedDate = types.NewDateString(selectedDate)
	s.SubmittedAt = submittedAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
