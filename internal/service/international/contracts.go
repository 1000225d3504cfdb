package international

import (
	"context"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// InternationalRepository interface do repositório de janelas internacionais
type InternationalRepository interface {
	ListActiveUpcoming(ctx context.Context, from time.Time) ([]*domain.InternationalWindow, error)
	List(ctx context.Context) ([]*domain.InternationalWindow, error)
	Create(ctx context.Context, window *domain.InternationalWindow) (*domain.InternationalWindow, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
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
