package middleware

import (
	"context"
	"net/http"

	"github.com/edumrsdw-devops/cadoreClinic/internal/api/handlers"
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// SessionHeader cabeçalho com o token de sessão do painel
const SessionHeader = "X-Session-ID"

const msgUnauthorized = "sessão inválida ou expirada"

type userContextKey struct{}

// AuthService interface de validação de sessão
type AuthService interface {
	Authenticate(ctx context.Context, sessionID string) (*domain.AdminUser, error)
}

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionAuth valida o X-Session-ID e injeta o usuário no contexto.
// Requisições sem sessão válida recebem 401.
func SessionAuth(authService AuthService, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)

			user, err := authService.Authenticate(r.Context(), sessionID)
			if err != nil {
				logger.Warn("SessionAuth: unauthorized %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext devolve o usuário autenticado injetado pelo SessionAuth
func UserFromContext(ctx context.Context) (*domain.AdminUser, bool) {
	user, ok := ctx.Value(userContextKey{}).(*domain.AdminUser)
	return user, ok
}
