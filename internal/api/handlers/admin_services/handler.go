package admin_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	catalogService "github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog"
	catalogModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidID          = "id inválido"
	msgInvalidService     = "dados do serviço inválidos"
	msgNotFound           = "serviço não encontrado"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// HandleList GET /api/admin/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, services)
}

// HandleCreate POST /api/admin/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req catalogModels.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalogService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)
			return
		}
		h.logger.Error("POST /admin/services - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/admin/services/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req catalogModels.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/services/%d - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalogService.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalogService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)
		default:
			h.logger.Error("PATCH /admin/services/%d - Failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
