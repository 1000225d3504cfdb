package get_services

import (
	"context"

	catalogModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog/models"
)

type CatalogService interface {
	ListActive(ctx context.Context) ([]catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
