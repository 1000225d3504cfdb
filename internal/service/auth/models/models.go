package models

import (
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// LoginRequest requisição de login do painel
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest requisição de troca de senha
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// LoginResponse resposta do login com o token de sessão
type LoginResponse struct {
	SessionID string       `json:"sessionId"`
	User      UserResponse `json:"user"`
}

// UserResponse dados públicos do usuário administrativo
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// FromDomainUser converte um usuário de domínio para response
func FromDomainUser(user *domain.AdminUser) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}
