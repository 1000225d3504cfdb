package auth

import (
	"context"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// AuthRepository interface do repositório de usuários e sessões
type AuthRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// TimeProvider interface para obter o horário atual (facilita testes)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
