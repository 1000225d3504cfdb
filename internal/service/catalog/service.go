package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/catalog/models"
)

// Service serviço do catálogo de procedimentos da clínica
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService cria o serviço do catálogo
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListActive lista os serviços ativos (vitrine pública)
func (s *Service) ListActive(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.catalogRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// List lista todos os serviços (painel admin)
func (s *Service) List(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// Create cadastra um serviço novo no fim da ordem de exibição
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	duration := domain.DefaultServiceDurationMinutes
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		duration = *req.DurationMinutes
	}

	svc := &domain.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: duration,
		Price:           req.Price,
		Active:          true,
	}

	created, err := s.catalogRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update aplica uma atualização parcial; desativar é o soft-delete do catálogo
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	updated, err := s.catalogRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}
