package appointments

import (
	"context"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error)
	ListForExport(ctx context.Context, filter domain.ExportFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	UpdateNotes(ctx context.Context, id int64, notes *string) error
	Delete(ctx context.Context, id int64) error
	CountActiveOnDate(ctx context.Context, date time.Time) (int64, error)
	CountActiveTotal(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)
}

// ContactRepository interface do repositório de mensagens
type ContactRepository interface {
	CountUnread(ctx context.Context) (int64, error)
}

// SettingsRepository interface do repositório de configurações
type SettingsRepository interface {
	IncrementCounter(ctx context.Context, key string) (int64, error)
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
