package get_international_dates

import (
	"context"

	internationalModels "github.com/edumrsdw-devops/cadoreClinic/internal/service/international/models"
)

type InternationalService interface {
	ListUpcoming(ctx context.Context) ([]internationalModels.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
