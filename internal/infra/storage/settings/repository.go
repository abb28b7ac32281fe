// Package settings реализует Config Store: key-value настройки фестиваля и
// диапазоны дат по годам
package settings

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

// Ключи настроек, известные сервису
const (
	KeyAPIBaseURL   = "api_base_url"
	KeyAPIKey       = "api_key"
	KeyThankYouPage = "thank_you_page"
	KeyBookingPage  = "booking_page"
	KeyMinYear      = "min_year"
	KeyMaxYear      = "max_year"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек фестиваля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает значение настройки по ключу
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("festival_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}
	return value, nil
}

// GetAll возвращает все настройки одной картой
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("festival_settings").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

// Set сохраняет значение настройки (upsert по ключу)
func (r *Repository) Set(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("festival_settings").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// ListDateRanges возвращает все диапазоны дат, отсортированные по году
func (r *Repository) ListDateRanges(ctx context.Context) ([]domain.DateRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("year", "start_date", "end_date").
		From("festival_date_ranges").
		OrderBy("year ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDateRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDateRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.DateRange, 0)
	for rows.Next() {
		var year int
		var start, end time.Time
		if err := rows.Scan(&year, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: ListDateRanges - scan row: %v", ErrScanRow, err)
		}
		ranges = append(ranges, domain.DateRange{
			Year:  year,
			Start: types.NewDateString(start),
			End:   types.NewDateString(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDateRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// ReplaceDateRanges заменяет весь набор диапазонов переданным
// Повторяющиеся годы схлопываются по принципу "последняя запись побеждает".
// Вызывается внутри транзакции (через txmanager), чтобы удаление и вставка
// были атомарными
func (r *Repository) ReplaceDateRanges(ctx context.Context, ranges []domain.DateRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("festival_date_ranges").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDateRanges - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDateRanges - execute delete: %v", ErrExecQuery, err)
	}

	if len(ranges) == 0 {
		return nil
	}

	// Дедупликация по году до вставки: последняя запись для года побеждает
	byYear := make(map[int]domain.DateRange, len(ranges))
	order := make([]int, 0, len(ranges))
	for _, dr := range ranges {
		if _, seen := byYear[dr.Year]; !seen {
			order = append(order, dr.Year)
		}
		byYear[dr.Year] = dr
	}

	insertBuilder := psqlbuilder.Insert("festival_date_ranges").
		Columns("year", "start_date", "end_date")
	for _, year := range order {
		dr := byYear[year]
		insertBuilder = insertBuilder.Values(dr.Year, dr.Start, dr.End)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDateRanges - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDateRanges - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
