package schedule

import (
	"context"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// ScheduleRepository interface do repositório da agenda
type ScheduleRepository interface {
	ListBlockedTimes(ctx context.Context) ([]*domain.BlockedTime, error)
	CreateBlockedTime(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, id int64) error
}

// SettingsRepository interface do repositório de configurações
type SettingsRepository interface {
	IncrementCounter(ctx context.Context, key string) (int64, error)
}

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
