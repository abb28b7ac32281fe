package update_submission_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	"github.com/everliz/VIP-BookingService/internal/domain"
	"github.com/everliz/VIP-BookingService/internal/service/submissions"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidID          = "Invalid submission id."
	msgInvalidStatus      = "Invalid status."
	msgNotFound           = "Submission not found."
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/submissions/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/submissions/{id}/status - Invalid id %q", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/submissions/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), id, domain.SubmissionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/submissions/{id}/status - Invalid status %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, submissions.ErrSubmissionNotFound):
			h.logger.Warn("PATCH /admin/submissions/{id}/status - Submission id=%d not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/submissions/{id}/status - Failed to update: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/submissions/{id}/status - Submission id=%d -> %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{
		ID:     id,
		Status: req.Status,
	})
}
