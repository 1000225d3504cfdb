package admin_services

import (
	"context"

	catalogModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) ([]catalogModels.ServiceResponse, error)
	Create(ctx context.Context, req *catalogModels.CreateServiceRequest) (*catalogModels.ServiceResponse, error)
	Update(ctx context.Context, id int64, req *catalogModels.UpdateServiceRequest) (*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
