package models

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// CreateMessageRequest requisição do formulário de contato
type CreateMessageRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
}

// MessageResponse dados de uma mensagem de contato
type MessageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Message   string  `json:"message"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomainMessage converte uma mensagem de domínio para response
func FromDomainMessage(msg *domain.ContactMessage) *MessageResponse {
	return &MessageResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Message:   msg.Message,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainMessageList converte uma lista de mensagens
func FromDomainMessageList(messages []*domain.ContactMessage) []MessageResponse {
	items := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		items[i] = *FromDomainMessage(msg)
	}
	return items
}
