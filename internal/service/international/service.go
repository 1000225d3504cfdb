package international

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/international/models"
)

// Service serviço das janelas de atendimento internacional
type Service struct {
	internationalRepo InternationalRepository
	timeProvider      TimeProvider
	logger            Logger
}

// NewService cria o serviço de janelas internacionais
func NewService(internationalRepo InternationalRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		internationalRepo: internationalRepo,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// ListUpcoming lista as janelas ativas que ainda não terminaram (site público)
func (s *Service) ListUpcoming(ctx context.Context) ([]models.WindowResponse, error) {
	windows, err := s.internationalRepo.ListActiveUpcoming(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// List lista todas as janelas (painel admin)
func (s *Service) List(ctx context.Context) ([]models.WindowResponse, error) {
	windows, err := s.internationalRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// Create cadastra uma janela internacional
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: creating window country=%s, start=%s, end=%s", req.CountryCode, req.StartDate, req.EndDate)

	window, err := s.buildWindow(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.internationalRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%d", created.ID)
	return models.FromDomainWindow(created), nil
}

// SetActive ativa ou desativa uma janela
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	s.logger.Info("SetActive: window id=%d, active=%v", id, active)

	if err := s.internationalRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, internationalRepo.ErrWindowNotFound) {
			s.logger.Warn("SetActive: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("SetActive: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Delete remove uma janela
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting window id=%d", id)

	if err := s.internationalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, internationalRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) buildWindow(req *models.CreateWindowRequest) (*domain.InternationalWindow, error) {
	if strings.TrimSpace(req.CountryCode) == "" || strings.TrimSpace(req.CountryName) == "" {
		return nil, fmt.Errorf("%w: countryCode and countryName are required", ErrInvalidInput)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
	}

	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	return &domain.InternationalWindow{
		CountryCode: strings.ToUpper(req.CountryCode),
		CountryName: req.CountryName,
		FlagEmoji:   req.FlagEmoji,
		StartDate:   startDate,
		EndDate:     endDate,
		City:        req.City,
		Active:      true,
	}, nil
}
