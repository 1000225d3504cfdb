package create_appointment

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	createAppointment "github.com/edumrsdw-devops/cadoreClinic/internal/usecase/create_appointment"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// CreateAppointmentRequest modelo HTTP da criação de agendamento
type CreateAppointmentRequest struct {
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ClientEmail     *string `json:"client_email,omitempty"`
	ServiceID       int64   `json:"service_id"`
	AppointmentDate string  `json:"appointment_date"` // "2026-09-14"
	AppointmentTime string  `json:"appointment_time"` // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse modelo HTTP do agendamento criado
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ClientEmail     *string `json:"client_email,omitempty"`
	ServiceID       int64   `json:"service_id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	LocationCountry string  `json:"location_country"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// CreatedResponse envelope do 201: mensagem de confirmação + agendamento
type CreatedResponse struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

// ToUseCaseRequest converte a requisição HTTP na requisição do use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		ServiceID:   r.ServiceID,
		Date:        date,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converte a resposta do use case em resposta HTTP
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ClientEmail:     resp.ClientEmail,
		ServiceID:       resp.ServiceID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		LocationCountry: resp.LocationCountry,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
