package admin_map

import (
	"errors"
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	settingsService "github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings"
	settingsModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/sitesettings/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidSettings    = "configurações do mapa inválidas"
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

// HandleGet GET /api/admin/map
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetMap(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/map - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}

// HandleUpdate PATCH /api/admin/map
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req settingsModels.MapSettings
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/map - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.settingsService.UpdateMap(r.Context(), &req)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PATCH /admin/map - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PATCH /admin/map - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
