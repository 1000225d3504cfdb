package catalog

import (
	"context"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
)

// CatalogRepository interface do repositório do catálogo
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error)
}

// Logger interface de log
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
