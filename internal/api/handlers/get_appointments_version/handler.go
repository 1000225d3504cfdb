package get_appointments_version

import (
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
)

type Handler struct {
	settingsService SettingsService
	logger          Logger
}

func NewHandler(settingsService SettingsService, logger Logger) *Handler {
	return &Handler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Handle GET /api/appointments-version
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	version, err := h.settingsService.GetAppointmentsVersion(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments-version - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, version)
}
