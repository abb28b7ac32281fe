package get_date_ranges

import (
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

type Handler struct {
	repo   SettingsRepository
	logger Logger
}

func NewHandler(repo SettingsRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/date-ranges
// Отдает только явно заданные диапазоны, без эвристических
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.repo.ListDateRanges(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/date-ranges - Failed to load: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]DateRange, 0, len(ranges))
	for _, dr := range ranges {
		items = append(items, DateRange{
			Year:      dr.Year,
			StartDate: dr.Start.String(),
			EndDate:   dr.End.String(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, DateRangesResponse{Ranges: items})
}
