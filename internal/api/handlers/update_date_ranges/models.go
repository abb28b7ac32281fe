package update_date_ranges

import (
	"fmt"

	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/pkg/types"
)

// DateRange один годовой диапазон из запроса
type DateRange struct {
	Year      int    `json:"year"`
	StartDate string `json:"startDate"` // "2025-09-20"
	EndDate   string `json:"endDate"`
}

// UpdateDateRangesRequest HTTP request model
// Присланный набор полностью замещает хранимый
type UpdateDateRangesRequest struct {
	Ranges []DateRange `json:"ranges"`
}

// ToDomain валидирует и конвертирует присланные диапазоны
// Правила как в оригинальной админке: даты в ISO формате, start ≤ end,
// обе даты внутри своего года
func (r *UpdateDateRangesRequest) ToDomain() ([]domain.DateRange, error) {
	ranges := make([]domain.DateRange, 0, len(r.Ranges))
	for i, dr := range r.Ranges {
		start, err := types.NewDateStringFromString(dr.StartDate)
		if err != nil {
			return nil, fmt.Errorf("range %d: invalid start date %q", i, dr.StartDate)
		}
		end, err := types.NewDateStringFromString(dr.EndDate)
		if err != nil {
			return nil, fmt.Errorf("range %d: invalid end date %q", i, dr.EndDate)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("range %d: start is after end", i)
		}

		startDay, _ := start.Time()
		endDay, _ := end.Time()
		if startDay.Year() != dr.Year || endDay.Year() != dr.Year {
			return nil, fmt.Errorf("range %d: dates do not match year %d", i, dr.Year)
		}

		ranges = append(ranges, domain.DateRange{
			Year:  dr.Year,
			Start: start,
			End:   end,
		})
	}
	return ranges, nil
}
