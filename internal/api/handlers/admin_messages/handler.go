package admin_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	contactService "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact"
)

const (
	msgInvalidID = "id inválido"
	msgNotFound  = "mensagem não encontrada"
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

// HandleList GET /api/admin/messages
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/messages - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, messages)
}

// HandleMarkRead PATCH /api/admin/messages/{id}
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.contactService.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, contactService.ErrMessageNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /admin/messages/%d - Failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleDelete DELETE /api/admin/messages/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, contactService.ErrMessageNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/messages/%d - Failed: %v", id, err)
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
