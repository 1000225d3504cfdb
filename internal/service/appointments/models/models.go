package models

import (
	"errors"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

var (
	// ErrInvalidStatus é retornado quando o status informado é inválido
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// ListAppointmentsRequest requisição da listagem de agendamentos do painel
type ListAppointmentsRequest struct {
	Date   *time.Time `json:"date,omitempty"`   // Filtro por data (opcional)
	Status *string    `json:"status,omitempty"` // Filtro por status (opcional)
	Page   int        `json:"page"`
	Limit  int        `json:"limit"`
}

// ToDomainFilter converte a requisição no filtro de domínio
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:  r.Date,
		Page:  r.Page,
		Limit: r.Limit,
	}

	if r.Status != nil {
		status, ok := domain.ParseStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateAppointmentRequest atualização parcial de um agendamento
type UpdateAppointmentRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ExportRequest requisição da exportação CSV
type ExportRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// AppointmentResponse dados de um agendamento
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`      // "2026-09-14"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	LocationCountry string  `json:"locationCountry"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// AppointmentListResponse listagem paginada de agendamentos
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

// StatsResponse estatísticas do painel
type StatsResponse struct {
	AppointmentsToday int64 `json:"appointmentsToday"`
	AppointmentsTotal int64 `json:"appointmentsTotal"`
	UpcomingCount     int64 `json:"upcomingCount"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

// FromDomainAppointment converte um agendamento de domínio para response
func FromDomainAppointment(appointment *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appointment.ID,
		ClientName:      appointment.ClientName,
		ClientPhone:     appointment.ClientPhone,
		ClientEmail:     appointment.ClientEmail,
		ServiceID:       appointment.ServiceID,
		ServiceName:     appointment.ServiceName,
		Date:            appointment.Date.Format(domain.DateFormat),
		StartTime:       appointment.StartTime.String(),
		DurationMinutes: appointment.ServiceDurationMinutes,
		LocationCountry: appointment.LocationCountry,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList converte uma lista de agendamentos
func FromDomainAppointmentList(appointments []*domain.Appointment, total int64, page, limit int) *AppointmentListResponse {
	items := make([]AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		items[i] = *FromDomainAppointment(appointment)
	}

	return &AppointmentListResponse{
		Appointments: items,
		Total:        total,
		Page:         page,
		Limit:        limit,
	}
}
