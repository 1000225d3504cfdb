package admin_blocked_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	scheduleService "github.com/edumrsdw-devops/cadoreClinic/internal/service/schedule"
	scheduleModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "id inválido"
	msgInvalidBlock       = "dados do bloqueio inválidos"
	msgNotFound           = "bloqueio não encontrado"
)

type Handler struct {
	scheduleService ScheduleService
	logger          Logger
}

func NewHandler(scheduleService ScheduleService, logger Logger) *Handler {
	return &Handler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// HandleList GET /api/admin/blocked-times
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.scheduleService.ListBlockedTimes(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-times - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, blocks)
}

// HandleCreate POST /api/admin/blocked-times
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req scheduleModels.CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.scheduleService.CreateBlockedTime(r.Context(), &req)
	if err != nil {
		if errors.Is(err, scheduleService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/blocked-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlock)
			return
		}
		h.logger.Error("POST /admin/blocked-times - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/admin/blocked-times/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.scheduleService.DeleteBlockedTime(r.Context(), id); err != nil {
		if errors.Is(err, scheduleService.ErrBlockNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/blocked-times/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
