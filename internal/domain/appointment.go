package domain

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// AppointmentStatus represents the status of an appointment.
// The set is open on the storage side but validated at the API boundary.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked appointment of a client for a clinic service
type Appointment struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	ServiceID   int64
	Date        time.Time
	StartTime   types.TimeString
	// LocationCountry código ISO do país onde o atendimento acontece
	// (carimbado na criação a partir da janela internacional ativa)
	LocationCountry string
	Status          AppointmentStatus
	Notes           *string
	CreatedAt       time.Time

	// Dados da services obtidos por JOIN nas leituras; nunca gravados aqui.
	// A duração é sempre resolvida ao vivo para o cálculo de conflitos.
	ServiceName            string
	ServiceDurationMinutes int
}

// IsActive returns true if the appointment still occupies its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// Interval returns the occupied [start, start+serviceDuration) interval
func (a *Appointment) Interval() (Interval, error) {
	duration := a.ServiceDurationMinutes
	if duration <= 0 {
		duration = DefaultServiceDurationMinutes
	}
	return NewInterval(a.StartTime, duration)
}

// AppointmentsFilter filtro para listagem administrativa de agendamentos
type AppointmentsFilter struct {
	Date   *time.Time         // Filtro por data (opcional)
	Status *AppointmentStatus // Filtro por status (opcional)
	Page   int
	Limit  int
}

// ExportFilter período para exportação CSV (ambas as datas opcionais)
type ExportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}
