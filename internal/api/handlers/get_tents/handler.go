package get_tents

import (
	"net/http"

	"github.com/everliz/VIP-BookingService/internal/api/handlers"
)

type Handler struct {
	tents  TentService
	logger Logger
}

func NewHandler(tents TentService, logger Logger) *Handler {
	return &Handler{
		tents:  tents,
		logger: logger,
	}
}

// Handle GET /api/v1/tents
// Каталог не умеет отказывать: при недоступных источниках отдается
// встроенный набор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.tents.Catalog(r.Context()))
}
