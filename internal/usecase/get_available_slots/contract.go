package get_available_slots

import (
	"context"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// AppointmentRepository interface do repositório de agendamentos
type AppointmentRepository interface {
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

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
