package get_calendar

import (
	"context"
	"fmt"

	"github.com/everliz/VIP-BookingService/internal/calendar"
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// UseCase use case получения календарной сетки
type UseCase struct {
	seasons      SeasonService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(seasons SeasonService, logger Logger) *UseCase {
	return &UseCase{
		seasons:      seasons,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит календарную сетку для года
// Год вне [minYear, maxYear] не ошибка: окно будет пустым, все даты disabled.
// Невалидная или выпадающая из окна дата выбора заменяется началом окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	minYear, maxYear := uc.seasons.Bounds(ctx)

	year := req.Year
	if year == 0 {
		year = clamp(uc.timeProvider.Now().Year(), minYear, maxYear)
	}

	window, err := uc.seasons.Resolve(ctx, year)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to resolve window for year %d: %v", year, err)
		return nil, fmt.Errorf("%w: Execute - resolve: %v", ErrInternal, err)
	}

	selected := uc.normalizeSelection(req.Selected, window)

	return &Response{
		Year:     year,
		MinYear:  minYear,
		MaxYear:  maxYear,
		Window:   window,
		Selected: selected,
		Months:   calendar.Build(year, window, selected, req.Compact),
	}, nil
}

// normalizeSelection повторяет инициализацию виджета: отсутствующая,
// некорректная или выпавшая из окна дата заменяется window.Start
func (uc *UseCase) normalizeSelection(raw string, window domain.ResolvedWindow) types.DateString {
	if window.IsEmpty() {
		return ""
	}
	if raw == "" {
		return window.Start
	}
	date, err := types.NewDateStringFromString(raw)
	if err != nil {
		uc.logger.Warn("GetCalendar: unparsable selection %q, defaulting to window start", raw)
		return window.Start
	}
	if !window.Contains(date) {
		return window.Start
	}
	return date
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
