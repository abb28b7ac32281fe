package get_settings

import (
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
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

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values, err := h.repo.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		APIBaseURL:   values[settings.KeyAPIBaseURL],
		APIKey:       values[settings.KeyAPIKey],
		ThankYouPage: values[settings.KeyThankYouPage],
		BookingPage:  values[settings.KeyBookingPage],
		MinYear:      values[settings.KeyMinYear],
		MaxYear:      values[settings.KeyMaxYear],
	})
}
