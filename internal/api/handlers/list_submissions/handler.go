package list_submissions

import (
	"net/http"
	"strconv"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
	"github.com/everliz/VIP-BookingService/internal/domain"
)

const (
	msgInvalidStatus = "Invalid status filter."
	msgInvalidParam  = "Invalid pagination parameter."
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

// Handle GET /api/v1/admin/submissions?status=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.SubmissionFilter{}

	if raw := query.Get("status"); raw != "" {
		status := domain.SubmissionStatus(raw)
		if !domain.ValidStatus(status) {
			h.logger.Warn("GET /admin/submissions - Invalid status %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	var err error
	if filter.Limit, err = intParam(query.Get("limit")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidParam)
		return
	}
	if filter.Offset, err = intParam(query.Get("offset")); err != nil {
		handlers.RespondBadRequest(w, msgInvalidParam)
		return
	}

	page, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/submissions - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]SubmissionResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, FromDomain(item))
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
