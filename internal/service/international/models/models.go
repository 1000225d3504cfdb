package models

import (
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// CreateWindowRequest requisição de criação de janela internacional
type CreateWindowRequest struct {
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	FlagEmoji   string  `json:"flagEmoji"`
	StartDate   string  `json:"startDate"` // "2026-10-05"
	EndDate     string  `json:"endDate"`   // "2026-10-16"
	City        *string `json:"city,omitempty"`
}

// UpdateWindowRequest atualização de uma janela (só o flag de ativação)
type UpdateWindowRequest struct {
	Active *bool `json:"active,omitempty"`
}

// WindowResponse dados de uma janela internacional
type WindowResponse struct {
	ID          int64   `json:"id"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	FlagEmoji   string  `json:"flagEmoji"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	City        *string `json:"city,omitempty"`
	Active      bool    `json:"active"`
}

// FromDomainWindow converte uma janela de domínio para response
func FromDomainWindow(window *domain.InternationalWindow) *WindowResponse {
	return &WindowResponse{
		ID:          window.ID,
		CountryCode: window.CountryCode,
		CountryName: window.CountryName,
		FlagEmoji:   window.FlagEmoji,
		StartDate:   window.StartDate.Format(domain.DateFormat),
		EndDate:     window.EndDate.Format(domain.DateFormat),
		City:        window.City,
		Active:      window.Active,
	}
}

// FromDomainWindowList converte uma lista de janelas
func FromDomainWindowList(windows []*domain.InternationalWindow) []WindowResponse {
	items := make([]WindowResponse, len(windows))
	for i, window := range windows {
		items[i] = *FromDomainWindow(window)
	}
	return items
}
