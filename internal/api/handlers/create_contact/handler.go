package create_contact

import (
	"errors"
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	contactService "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact"
	contactModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "nome e mensagem são obrigatórios"
)

type Handler struct {
	contactService ContactService
	logger         Logger
}

func NewHandler(contactService ContactService, logger Logger) *Handler {
	return &Handler{
		contactService: contactService,
		logger:         logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req contactModels.CreateMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.contactService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, contactService.ErrInvalidInput) {
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /contact - Failed to create message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact - Message created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
