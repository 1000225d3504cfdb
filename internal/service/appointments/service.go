package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	appointmentRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/appointment"
	"github.com/edumrsdw-devops/cadoreClinic/internal/service/appointments/models"
)

// Service serviço de gestão de agendamentos do painel administrativo
type Service struct {
	appointmentRepo AppointmentRepository
	contactRepo     ContactRepository
	settingsRepo    SettingsRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService cria o serviço de agendamentos
func NewService(
	appointmentRepo AppointmentRepository,
	contactRepo ContactRepository,
	settingsRepo SettingsRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		contactRepo:     contactRepo,
		settingsRepo:    settingsRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// appointmentsVersionKey chave do marcador de versão dos agendamentos
const appointmentsVersionKey = "appointments_version"

// List lista os agendamentos com filtro e paginação
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, date=%v, status=%v, page=%d", req.Date, req.Status, req.Page)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	appointments, total, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d appointments", len(appointments), total)
	return models.FromDomainAppointmentList(appointments, total, filter.Page, filter.Limit), nil
}

// Update aplica a atualização parcial de status e observações.
// Mudança de status mexe nos impedimentos de vagas, então o marcador de
// versão é avançado.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	if req.Status == nil && req.Notes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Status != nil {
		status, ok := domain.ParseStatus(*req.Status)
		if !ok {
			s.logger.Warn("Update: invalid status=%s for appointment id=%d", *req.Status, id)
			return nil, ErrInvalidStatus
		}

		if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
			return nil, s.mapRepoError("Update", id, err)
		}

		if _, err := s.settingsRepo.IncrementCounter(ctx, appointmentsVersionKey); err != nil {
			s.logger.Error("Update: failed to bump version marker: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to bump version marker: %v", ErrInternal, err)
		}
	}

	if req.Notes != nil {
		if err := s.appointmentRepo.UpdateNotes(ctx, id, req.Notes); err != nil {
			return nil, s.mapRepoError("Update", id, err)
		}
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// Delete remove um agendamento definitivamente e avança o marcador de versão
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	if _, err := s.settingsRepo.IncrementCounter(ctx, appointmentsVersionKey); err != nil {
		s.logger.Error("Delete: failed to bump version marker: %v", err)
		return fmt.Errorf("%w: Delete - failed to bump version marker: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// Stats devolve os contadores do painel
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()

	today, err := s.appointmentRepo.CountActiveOnDate(ctx, now)
	if err != nil {
		s.logger.Error("Stats: failed to count today's appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
	}

	total, err := s.appointmentRepo.CountActiveTotal(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count total appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count total: %v", ErrInternal, err)
	}

	upcoming, err := s.appointmentRepo.CountUpcoming(ctx, now)
	if err != nil {
		s.logger.Error("Stats: failed to count upcoming appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - count upcoming: %v", ErrInternal, err)
	}

	unread, err := s.contactRepo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count unread messages: %v", err)
		return nil, fmt.Errorf("%w: Stats - count unread: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		AppointmentsToday: today,
		AppointmentsTotal: total,
		UpcomingCount:     upcoming,
		UnreadMessages:    unread,
	}, nil
}

// Export gera o CSV dos agendamentos do período
func (s *Service) Export(ctx context.Context, req *models.ExportRequest) ([]byte, error) {
	s.logger.Info("Export: exporting appointments, start=%v, end=%v", req.StartDate, req.EndDate)

	filter := domain.ExportFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	appointments, err := s.appointmentRepo.ListForExport(ctx, filter)
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	csv, err := buildCSV(appointments)
	if err != nil {
		s.logger.Error("Export: failed to build csv: %v", err)
		return nil, fmt.Errorf("%w: Export - build csv: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d appointments", len(appointments))
	return csv, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
