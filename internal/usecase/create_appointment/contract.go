package create_appointment

import (
	"context"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// ScheduleRepository interface do repositório da agenda
type ScheduleRepository interface {
	GetWorkingHoursForWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error)
	ListBlockedTimesByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
}

// CatalogRepository interface do catálogo de serviços
type CatalogRepository interface {
	GetDuration(ctx context.Context, id int64) (int, error)
}

// InternationalRepository interface das janelas de atendimento internacional
type InternationalRepository interface {
	ResolveForDate(ctx context.Context, date time.Time) (*domain.InternationalWindow, error)
}

// SettingsRepository interface do repositório de configurações
type SettingsRepository interface {
	IncrementCounter(ctx context.Context, key string) (int64, error)
}

// TransactionManager interface de controle de transações
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
