package get_booking_form

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

type Handler struct {
	tokens     TokenIssuer
	cookieName string
	logger     Logger
}

func NewHandler(tokens TokenIssuer, cookieName string, logger Logger) *Handler {
	return &Handler{
		tokens:     tokens,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Handle GET /api/v1/booking-form
// Выдает свежий form token, привязанный к сессии посетителя.
// Если сессионной куки еще нет, она устанавливается здесь же
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	handlers.RespondJSON(w, http.StatusOK, FormResponse{
		FormToken: h.tokens.Issue(sessionID),
	})
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Info("GET /booking-form - new visitor session issued")
	return sessionID
}
