package get_international_dates

import (
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
)

type Handler struct {
	internationalService InternationalService
	logger               Logger
}

func NewHandler(internationalService InternationalService, logger Logger) *Handler {
	return &Handler{
		internationalService: internationalService,
		logger:               logger,
	}
}

// Handle GET /api/international-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	windows, err := h.internationalService.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /international-dates - Failed to list windows: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, windows)
}
