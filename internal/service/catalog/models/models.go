package models

import (
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// CreateServiceRequest requisição de criação de serviço
type CreateServiceRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration,omitempty"` // Ausente usa a duração padrão
	Price           *float64 `json:"price,omitempty"`
}

// UpdateServiceRequest atualização parcial de serviço
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"duration,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// ToDomainUpdate converte a requisição na atualização de domínio
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Active:          r.Active,
	}
}

// ServiceResponse dados de um serviço
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes int      `json:"duration"`
	Price           *float64 `json:"price,omitempty"`
	Active          bool     `json:"active"`
	SortOrder       int      `json:"sortOrder"`
}

// FromDomainService converte um serviço de domínio para response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Active:          svc.Active,
		SortOrder:       svc.SortOrder,
	}
}

// FromDomainServiceList converte uma lista de serviços
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	items := make([]ServiceResponse, len(services))
	for i, svc := range services {
		items[i] = *FromDomainService(svc)
	}
	return items
}
