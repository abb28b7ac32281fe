package submit_booking

import (
	"errors"
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	submitBooking "github.com/everliz/VIP-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgSecurityFailed     = "Security verification failed."
	msgSubmitted          = "Thank you! Your booking inquiry has been received."
)

type Handler struct {
	useCase    SubmitBookingUseCase
	cookieName string
	logger     Logger
}

func NewHandler(useCase SubmitBookingUseCase, cookieName string, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(h.sessionID(r)))
	if err != nil {
		if verr, ok := submitBooking.AsValidationError(err); ok {
			h.logger.Warn("POST /bookings - Validation failed: %d field(s)", len(verr.Fields))
			handlers.RespondFieldErrors(w, verr.Fields)
			return
		}

		switch {
		case errors.Is(err, submitBooking.ErrSecurityCheck):
			h.logger.Warn("POST /bookings - Security check failed")
			handlers.RespondError(w, http.StatusForbidden, msgSecurityFailed)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Submission id=%d reference=%s accepted", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, SubmitBookingResponse{
		Message:      msgSubmitted,
		SubmissionID: result.ID,
		Reference:    result.Reference,
		RedirectURL:  result.RedirectURL,
	})
}

func (h *Handler) sessionID(r *http.Request) string {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
