package export_submissions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	"github.com/everliz/VIP-BookingService/internal/domain"
)

const msgInvalidStatus = "Invalid status filter."

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

// Handle GET /api/v1/admin/submissions/export?status=
// Отдает книгу xlsx как вложение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *domain.SubmissionStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.SubmissionStatus(raw)
		if !domain.ValidStatus(s) {
			h.logger.Warn("GET /admin/submissions/export - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &s
	}

	book, err := h.service.ExportXLSX(r.Context(), status)
	if err != nil {
		h.logger.Error("GET /admin/submissions/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("submissions-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := book.Write(w); err != nil {
		// Заголовки уже ушли, остается только залогировать
		h.logger.Error("GET /admin/submissions/export - Failed to write workbook: %v", err)
		return
	}
	h.logger.Info("GET /admin/submissions/export - Workbook %s sent", filename)
}
