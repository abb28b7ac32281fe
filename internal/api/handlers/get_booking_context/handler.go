package get_booking_context

import (
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	getBookingContext "github.com/everliz/VIP-BookingService/internal/usecase/get_booking_context"
)

type Handler struct {
	useCase GetBookingContextUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingContextUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-context?date=&location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &getBookingContext.Request{
		Date:     query.Get("date"),
		Location: query.Get("location"),
	})
	if err != nil {
		h.logger.Error("GET /booking-context - Failed to resolve context: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ContextResponse{
		SelectedDate:   result.SelectedDate.String(),
		TentPreference: string(result.TentPreference),
		SelectedTent:   result.SelectedTent,
	})
}
