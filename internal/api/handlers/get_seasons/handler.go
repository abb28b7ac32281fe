package get_seasons

import (
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

type Handler struct {
	seasons SeasonService
	logger  Logger
}

func NewHandler(seasons SeasonService, logger Logger) *Handler {
	return &Handler{
		seasons: seasons,
		logger:  logger,
	}
}

// Handle GET /api/v1/seasons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ranges, err := h.seasons.DateRanges(r.Context())
	if err != nil {
		h.logger.Error("GET /seasons - Failed to load date ranges: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	minYear, maxYear := h.seasons.Bounds(r.Context())

	seasons := make([]Season, 0, len(ranges))
	for _, dr := range ranges {
		seasons = append(seasons, Season{
			Year:      dr.Year,
			StartDate: dr.Start.String(),
			EndDate:   dr.End.String(),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, SeasonsResponse{
		MinYear: minYear,
		MaxYear: maxYear,
		Seasons: seasons,
	})
}
