// Package seasons отвечает за диапазоны дат фестиваля: источники (API →
// Config Store → встроенный дефолт) и вычисление окна для конкретного года
package seasons

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/everliz/VIP-BookingService/internal/calendar"
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
	"github.com/everliz/VIP-BookingService/internal/integrations/bookingapi"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// defaultRanges встроенный набор диапазонов на случай пустого Config Store
var defaultRanges = []domain.DateRange{
	{Year: 2025, Start: "2025-09-20", End: "2025-10-05"},
}

// Service сервис диапазонов дат
type Service struct {
	settings SettingsRepository
	api      SeasonsAPI
	logger   Logger
}

// NewService создает новый экземпляр сервиса диапазонов
func NewService(settingsRepo SettingsRepository, api SeasonsAPI, logger Logger) *Service {
	return &Service{
		settings: settingsRepo,
		api:      api,
		logger:   logger,
	}
}

// DateRanges возвращает действующий набор диапазонов дат по годам
// Источники в порядке приоритета:
// 1. External Booking API (если сконфигурирован и ответил корректно)
// 2. Config Store
// 3. Встроенный дефолт
// Недоступность API не является ошибкой - просто переход к следующему источнику
func (s *Service) DateRanges(ctx context.Context) ([]domain.DateRange, error) {
	if s.api.IsConfigured(ctx) {
		apiSeasons, err := s.api.GetSeasons(ctx)
		if err != nil {
			s.logger.Warn("DateRanges: api seasons unavailable, falling back to store: %v", err)
		} else if ranges := convertSeasons(apiSeasons); len(ranges) > 0 {
			s.logger.Info("DateRanges: using %d ranges from api", len(ranges))
			return ranges, nil
		}
	}

	ranges, err := s.settings.ListDateRanges(ctx)
	if err != nil {
		s.logger.Error("DateRanges: failed to read store: %v", err)
		return nil, fmt.Errorf("%w: DateRanges - repository error: %v", ErrInternal, err)
	}
	if len(ranges) > 0 {
		return ranges, nil
	}

	s.logger.Info("DateRanges: store is empty, using built-in defaults")
	return defaultRanges, nil
}

// Bounds возвращает границы годов [minYear, maxYear] из Config Store
// Отсутствующие или некорректные значения заменяются дефолтами
func (s *Service) Bounds(ctx context.Context) (int, int) {
	minYear := s.intSetting(ctx, settings.KeyMinYear, domain.DefaultMinYear)
	maxYear := s.intSetting(ctx, settings.KeyMaxYear, domain.DefaultMaxYear)
	if minYear > maxYear {
		s.logger.Warn("Bounds: min_year %d greater than max_year %d, using defaults", minYear, maxYear)
		return domain.DefaultMinYear, domain.DefaultMaxYear
	}
	return minYear, maxYear
}

// Resolve вычисляет окно доступных дат для года
func (s *Service) Resolve(ctx context.Context, year int) (domain.ResolvedWindow, error) {
	ranges, err := s.DateRanges(ctx)
	if err != nil {
		return domain.ResolvedWindow{}, err
	}
	minYear, maxYear := s.Bounds(ctx)
	return calendar.Resolve(year, calendar.RangesByYear(ranges), minYear, maxYear), nil
}

func (s *Service) intSetting(ctx context.Context, key string, def int) int {
	raw, err := s.settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingNotFound) {
			s.logger.Warn("intSetting: failed to read %s: %v", key, err)
		}
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("intSetting: invalid value for %s: %q", key, raw)
		return def
	}
	return value
}

// convertSeasons конвертирует ответ API в доменные диапазоны
// Записи с некорректными датами или датами вне своего года пропускаются
func convertSeasons(apiSeasons []bookingapi.SeasonRange) []domain.DateRange {
	ranges := make([]domain.DateRange, 0, len(apiSeasons))
	for _, season := range apiSeasons {
		start, err := types.NewDateStringFromString(season.StartDate)
		if err != nil {
			continue
		}
		end, err := types.NewDateStringFromString(season.EndDate)
		if err != nil {
			continue
		}
		if end.Before(start) {
			continue
		}
		startDay, _ := start.Time()
		endDay, _ := end.Time()
		if startDay.Year() != season.Year || endDay.Year() != season.Year {
			continue
		}
		ranges = append(ranges, domain.DateRange{Year: season.Year, Start: start, End: end})
	}
	return ranges
}
