package admin_auth

import (
	"errors"
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	"github.com/edumrsdw-devops/cadoreClinic/internal/api/middleware"
	authService "github.com/edumrsdw-devops/cadoreClinic/internal/service/auth"
	authModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCredentials = "usuário ou senha incorretos"
	msgWeakPassword       = "a nova senha é muito curta"
	msgUnauthorized       = "sessão inválida ou expirada"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// HandleLogin POST /api/admin/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req authModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials), errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /admin/login - Invalid credentials for username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /admin/login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleLogout POST /api/admin/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(middleware.SessionHeader)

	if err := h.authService.Logout(r.Context(), sessionID); err != nil {
		h.logger.Error("POST /admin/logout - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleMe GET /api/admin/me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, authModels.FromDomainUser(user))
}

// HandleChangePassword POST /api/admin/change-password
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req authModels.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/change-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), user.ID, &req); err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/change-password - Wrong current password for user id=%d", user.ID)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		case errors.Is(err, authService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgWeakPassword)
		default:
			h.logger.Error("POST /admin/change-password - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
