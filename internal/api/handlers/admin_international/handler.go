package admin_international

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	internationalService "github.com/edumrsdw-devops/cadoreClinic/internal/service/international"
	internationalModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/international/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "id inválido"
	msgInvalidWindow      = "dados da janela internacional inválidos"
	msgNotFound           = "janela internacional não encontrada"
	msgNothingToUpdate    = "nada para atualizar"
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

// HandleList GET /api/admin/international-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	windows, err := h.internationalService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/international-dates - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, windows)
}

// HandleCreate POST /api/admin/international-dates
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req internationalModels.CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/international-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.internationalService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, internationalService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/international-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		h.logger.Error("POST /admin/international-dates - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/admin/international-dates/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req internationalModels.UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/international-dates/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Active == nil {
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	if err := h.internationalService.SetActive(r.Context(), id, *req.Active); err != nil {
		if errors.Is(err, internationalService.ErrWindowNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /admin/international-dates/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleDelete DELETE /api/admin/international-dates/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.internationalService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, internationalService.ErrWindowNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/international-dates/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}
