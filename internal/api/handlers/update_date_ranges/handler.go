package update_date_ranges

import (
	"context"
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

const msgInvalidRequestBody = "Invalid request body."

type Handler struct {
	repo      SettingsRepository
	txManager TransactionManager
	logger    Logger
}

func NewHandler(repo SettingsRepository, txManager TransactionManager, logger Logger) *Handler {
	return &Handler{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Handle PUT /api/v1/admin/date-ranges
// Замещает весь набор диапазонов в одной транзакции.
// Дубликаты года схлопываются: побеждает последняя запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateDateRangesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/date-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ranges, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /admin/date-ranges - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	err = h.txManager.Do(r.Context(), func(ctx context.Context) error {
		return h.repo.ReplaceDateRanges(ctx, ranges)
	})
	if err != nil {
		h.logger.Error("PUT /admin/date-ranges - Failed to replace: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/date-ranges - Replaced with %d range(s)", len(ranges))
	handlers.RespondJSON(w, http.StatusOK, struct{}{})
}
