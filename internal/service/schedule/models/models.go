package models

import (
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// CreateBlockedTimeRequest requisição de criação de bloqueio
type CreateBlockedTimeRequest struct {
	Date   string  `json:"date"`           // "2026-09-14"
	Time   *string `json:"time,omitempty"` // "14:30"; ausente em bloqueio de dia inteiro
	AllDay bool    `json:"allDay"`
	Reason *string `json:"reason,omitempty"`
}

// BlockedTimeResponse dados de um bloqueio
type BlockedTimeResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Time   *string `json:"time,omitempty"`
	AllDay bool    `json:"allDay"`
	Reason *string `json:"reason,omitempty"`
}

// FromDomainBlockedTime converte um bloqueio de domínio para response
func FromDomainBlockedTime(block *domain.BlockedTime) *BlockedTimeResponse {
	resp := &BlockedTimeResponse{
		ID:     block.ID,
		Date:   block.Date.Format(domain.DateFormat),
		AllDay: block.AllDay,
		Reason: block.Reason,
	}

	if block.BlockTime != nil {
		t := block.BlockTime.String()
		resp.Time = &t
	}

	return resp
}

// FromDomainBlockedTimeList converte uma lista de bloqueios
func FromDomainBlockedTimeList(blocks []*domain.BlockedTime) []BlockedTimeResponse {
	items := make([]BlockedTimeResponse, len(blocks))
	for i, block := range blocks {
		items[i] = *FromDomainBlockedTime(block)
	}
	return items
}
