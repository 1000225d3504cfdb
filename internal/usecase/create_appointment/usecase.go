package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
)

// appointmentsVersionKey chave do marcador de versão dos agendamentos,
// incrementado na mesma transação de cada criação
const appointmentsVersionKey = "appointments_version"

// UseCase use case de criação de agendamento
type UseCase struct {
	appointmentRepo   AppointmentRepository
	scheduleRepo      ScheduleRepository
	catalogRepo       CatalogRepository
	internationalRepo InternationalRepository
	settingsRepo      SettingsRepository
	txManager         TransactionManager
	logger            Logger
}

// NewUseCase cria uma nova instância do use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	internationalRepo InternationalRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:   appointmentRepo,
		scheduleRepo:      scheduleRepo,
		catalogRepo:       catalogRepo,
		internationalRepo: internationalRepo,
		settingsRepo:      settingsRepo,
		txManager:         txManager,
		logger:            logger,
	}
}

// Execute executa a criação de um agendamento.
// Usa transação serializável com bloqueio das linhas da data: entre dois
// pedidos concorrentes para horários conflitantes, exatamente um vence.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, service=%d, date=%s, time=%s",
		req.ClientName, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validação dos dados de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve a duração do serviço
	duration, err := uc.catalogRepo.GetDuration(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get duration for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service duration: %v", ErrInternal, err)
	}

	// 3. Horário de funcionamento do dia da semana
	dayOfWeek := int(req.Date.Weekday())
	workingHours, err := uc.scheduleRepo.GetWorkingHoursForWeekday(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			uc.logger.Warn("CreateAppointment: clinic closed on %s (weekday=%d)",
				req.Date.Format(domain.DateFormat), dayOfWeek)
			return nil, ErrDayClosed
		}
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. O intervalo pedido precisa caber no expediente
	requested, err := domain.NewInterval(req.StartTime, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid appointment_time: %v", ErrInvalidInput, err)
	}

	open, err := workingHours.OpenInterval()
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid working hours: %v", err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}
	if requested.Start < open.Start || requested.End > open.End {
		uc.logger.Warn("CreateAppointment: time %s outside working hours on %s",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, ErrOutsideWorkingHours
	}

	// 5. País de atendimento a partir da janela internacional (padrão BR)
	locationCountry, err := uc.resolveLocationCountry(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 6. Validação de conflito e escrita na transação serializável
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Bloqueios da data
		blocks, err := uc.scheduleRepo.ListBlockedTimesByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list blocked times: %v", err)
			return fmt.Errorf("%w: failed to list blocked times: %v", ErrInternal, err)
		}

		for _, block := range blocks {
			if block.AllDay {
				uc.logger.Warn("CreateAppointment: date %s is fully blocked", req.Date.Format(domain.DateFormat))
				return ErrDateBlocked
			}
			if block.BlockTime == nil {
				continue
			}

			minute, err := block.BlockTime.Minutes()
			if err != nil {
				return fmt.Errorf("%w: invalid blocked time: %v", ErrInternal, err)
			}
			if requested.Contains(minute) {
				uc.logger.Warn("CreateAppointment: time %s hits point block at %s", req.StartTime, *block.BlockTime)
				return ErrSlotConflict
			}
		}

		// 6.2. Agendamentos ativos da data, com bloqueio das linhas (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.3. Verifica a sobreposição de intervalos
		for _, appointment := range appointments {
			existing, err := appointment.Interval()
			if err != nil {
				return fmt.Errorf("%w: invalid stored appointment: %v", ErrInternal, err)
			}
			if requested.Overlaps(existing) {
				uc.logger.Warn("CreateAppointment: time %s conflicts with appointment id=%d",
					req.StartTime, appointment.ID)
				return ErrSlotConflict
			}
		}

		// 6.4. Grava o agendamento
		appointment := &domain.Appointment{
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ClientEmail:     req.ClientEmail,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			LocationCountry: locationCountry,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 6.5. Avança o marcador de versão na mesma transação
		version, err := uc.settingsRepo.IncrementCounter(txCtx, appointmentsVersionKey)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to bump version marker: %v", err)
			return fmt.Errorf("%w: failed to bump version marker: %v", ErrInternal, err)
		}

		uc.logger.Info("CreateAppointment: appointments version is now %d", version)
		result = created
		return nil
	})

	if err != nil {
		// Falha de serialização significa que outro pedido venceu a disputa
		// pelo mesmo horário. Sem retry: o cliente deve escolher outro horário.
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization failure, treating as slot conflict: %v", err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ClientEmail:     result.ClientEmail,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		LocationCountry: result.LocationCountry,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveLocationCountry resolve o país de atendimento na data
func (uc *UseCase) resolveLocationCountry(ctx context.Context, date time.Time) (string, error) {
	window, err := uc.internationalRepo.ResolveForDate(ctx, date)
	if err != nil {
		if errors.Is(err, internationalRepo.ErrWindowNotFound) {
			return domain.DefaultLocationCountry, nil
		}
		uc.logger.Error("CreateAppointment: failed to resolve international window: %v", err)
		return "", fmt.Errorf("%w: failed to resolve international window: %v", ErrInternal, err)
	}

	return window.CountryCode, nil
}

// isSerializationFailure verifica se o erro é uma falha de serialização do
// Postgres (SQLSTATE 40001)
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001"
	}
	return false
}
