package create_contact

import (
	"context"

	contactModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact/models"
)

type ContactService interface {
	Create(ctx context.Context, req *contactModels.CreateMessageRequest) (*contactModels.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
