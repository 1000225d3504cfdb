package admin_messages

import (
	"context"

	contactModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/contact/models"
)

type ContactService interface {
	List(ctx context.Context) ([]contactModels.MessageResponse, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
