package admin_auth

import (
	"context"

	authModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *authModels.LoginRequest) (*authModels.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	ChangePassword(ctx context.Context, userID int64, req *authModels.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
