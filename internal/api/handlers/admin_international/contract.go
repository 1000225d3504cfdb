package admin_international

import (
	"context"

	internationalModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/international/models"
)

type InternationalService interface {
	List(ctx context.Context) ([]internationalModels.WindowResponse, error)
	Create(ctx context.Context, req *internationalModels.CreateWindowRequest) (*internationalModels.WindowResponse, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
