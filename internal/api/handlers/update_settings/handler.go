package update_settings

import (
	"net/http"
	"strconv"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	"github.com/everliz/VIP-BookingService/internal/infra/storage/settings"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidYears       = "minYear must not exceed maxYear."
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

// Handle PUT /api/v1/admin/settings
// Обновляются только присланные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.MinYear != nil && req.MaxYear != nil && *req.MinYear > *req.MaxYear {
		h.logger.Warn("PUT /admin/settings - minYear %d > maxYear %d", *req.MinYear, *req.MaxYear)
		handlers.RespondBadRequest(w, msgInvalidYears)
		return
	}

	updates := map[string]*string{
		settings.KeyAPIBaseURL:   req.APIBaseURL,
		settings.KeyAPIKey:       req.APIKey,
		settings.KeyThankYouPage: req.ThankYouPage,
		settings.KeyBookingPage:  req.BookingPage,
	}
	if req.MinYear != nil {
		v := strconv.Itoa(*req.MinYear)
		updates[settings.KeyMinYear] = &v
	}
	if req.MaxYear != nil {
		v := strconv.Itoa(*req.MaxYear)
		updates[settings.KeyMaxYear] = &v
	}

	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := h.repo.Set(r.Context(), key, *value); err != nil {
			h.logger.Error("PUT /admin/settings - Failed to set %s: %v", key, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PUT /admin/settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}
