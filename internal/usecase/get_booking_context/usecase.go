// Package get_booking_context разворачивает обфусцированные параметры
// перехода со страницы поиска в префилл формы бронирования
package get_booking_context

import (
	"context"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/obfuscate"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// UseCase use case разбора контекста бронирования
type UseCase struct {
	seasons SeasonService
	tents   TentCatalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(seasons SeasonService, tents TentCatalog, logger Logger) *UseCase {
	return &UseCase{
		seasons: seasons,
		tents:   tents,
		logger:  logger,
	}
}

// Execute декодирует параметры и перепроверяет дату по актуальному окну
// Ошибки декодирования не фатальны: значение берется как есть, а
// нераспознанная или выпавшая из окна дата просто отбрасывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{
		TentPreference: domain.TentAny,
		SelectedTent:   domain.AnyTentID,
	}

	if raw := obfuscate.Decode(req.Date); raw != "" {
		resp.SelectedDate = uc.revalidateDate(ctx, raw)
	}

	if location := obfuscate.Decode(req.Location); location != "" && location != domain.AnyTentID {
		if !uc.tents.Known(ctx, location) {
			uc.logger.Warn("BookingContext: unknown tent id %q in hand-off, keeping as-is", location)
		}
		resp.TentPreference = domain.TentSpecific
		resp.SelectedTent = location
	}

	return resp, nil
}

func (uc *UseCase) revalidateDate(ctx context.Context, raw string) types.DateString {
	date, err := types.NewDateStringFromString(raw)
	if err != nil {
		uc.logger.Warn("BookingContext: unparsable date %q in hand-off", raw)
		return ""
	}

	day, err := date.Time()
	if err != nil {
		return ""
	}
	window, err := uc.seasons.Resolve(ctx, day.Year())
	if err != nil || !window.Contains(date) {
		return ""
	}
	return date
}
