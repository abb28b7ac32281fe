package get_calendar

import (
	"net/http"
	"strconv"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	getCalendar "github.com/everliz/VIP-BookingService/internal/usecase/get_calendar"
)

const msgInvalidYear = "Invalid year parameter."

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=&selected=&compact=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year := 0
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid year %q", raw)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		Year:     year,
		Selected: query.Get("selected"),
		Compact:  query.Get("compact") == "1" || query.Get("compact") == "true",
	})
	if err != nil {
		h.logger.Error("GET /calendar - Failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
