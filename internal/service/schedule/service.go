package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/schedule/models"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// appointmentsVersionKey chave do marcador de versão dos agendamentos
const appointmentsVersionKey = "appointments_version"

// Service serviço de bloqueios da agenda
type Service struct {
	scheduleRepo ScheduleRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService cria o serviço da agenda
func NewService(scheduleRepo ScheduleRepository, settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// ListBlockedTimes lista os bloqueios cadastrados
func (s *Service) ListBlockedTimes(ctx context.Context) ([]models.BlockedTimeResponse, error) {
	blocks, err := s.scheduleRepo.ListBlockedTimes(ctx)
	if err != nil {
		s.logger.Error("ListBlockedTimes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedTimes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedTimeList(blocks), nil
}

// CreateBlockedTime cadastra um bloqueio pontual ou de dia inteiro.
// Bloqueio novo muda os impedimentos de vagas, então o marcador de versão é
// avançado.
func (s *Service) CreateBlockedTime(ctx context.Context, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	s.logger.Info("CreateBlockedTime: date=%s, time=%v, allDay=%v", req.Date, req.Time, req.AllDay)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateBlockedTime: invalid date=%s", req.Date)
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	block := &domain.BlockedTime{
		Date:   date,
		AllDay: req.AllDay,
		Reason: req.Reason,
	}

	if !req.AllDay {
		if req.Time == nil {
			return nil, fmt.Errorf("%w: time is required for a point block", ErrInvalidInput)
		}

		blockTime, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			s.logger.Warn("CreateBlockedTime: invalid time=%s", *req.Time)
			return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
		block.BlockTime = &blockTime
	}

	created, err := s.scheduleRepo.CreateBlockedTime(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	if _, err := s.settingsRepo.IncrementCounter(ctx, appointmentsVersionKey); err != nil {
		s.logger.Error("CreateBlockedTime: failed to bump version marker: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - failed to bump version marker: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: successfully created block id=%d", created.ID)
	return models.FromDomainBlockedTime(created), nil
}

// DeleteBlockedTime remove um bloqueio e avança o marcador de versão
func (s *Service) DeleteBlockedTime(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlockedTime: deleting block id=%d", id)

	if err := s.scheduleRepo.DeleteBlockedTime(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlockedTime: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}

	if _, err := s.settingsRepo.IncrementCounter(ctx, appointmentsVersionKey); err != nil {
		s.logger.Error("DeleteBlockedTime: failed to bump version marker: %v", err)
		return fmt.Errorf("%w: DeleteBlockedTime - failed to bump version marker: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedTime: successfully deleted block id=%d", id)
	return nil
}
