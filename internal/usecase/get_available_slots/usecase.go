package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	catalogRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/catalog"
	internationalRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/international"
	scheduleRepo "github.com/edumrsdw-devops/cadoreClinic/internal/infra/storage/schedule"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

const (
	msgDayClosed  = "Não há horários disponíveis neste dia"
	msgDayBlocked = "Este dia está bloqueado"
)

// UseCase use case do cálculo de horários disponíveis
type UseCase struct {
	appointmentRepo   AppointmentRepository
	scheduleRepo      ScheduleRepository
	catalogRepo       CatalogRepository
	internationalRepo InternationalRepository
	logger            Logger
}

// NewUseCase cria uma nova instância do use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	internationalRepo InternationalRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:   appointmentRepo,
		scheduleRepo:      scheduleRepo,
		catalogRepo:       catalogRepo,
		internationalRepo: internationalRepo,
		logger:            logger,
	}
}

// Execute executa o cálculo dos horários disponíveis para uma data.
// Leitura pura: duas chamadas com o mesmo estado produzem o mesmo resultado.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, service_id=%v", req.Date.Format(domain.DateFormat), req.ServiceID)

	// 1. Validação dos dados de entrada
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve a duração do serviço (padrão quando ausente ou desconhecido)
	duration := uc.resolveDuration(ctx, req.ServiceID)

	// 3. Janela internacional cobrindo a data (informativo, não afeta vagas)
	international, err := uc.resolveInternational(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Horário de funcionamento do dia da semana
	dayOfWeek := int(req.Date.Weekday())
	workingHours, err := uc.scheduleRepo.GetWorkingHoursForWeekday(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrWorkingHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: closed on %s (weekday=%d)", req.Date.Format(domain.DateFormat), dayOfWeek)
			return uc.emptyResponse(req, duration, msgDayClosed, international), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 5. Bloqueios cadastrados para a data
	blocks, err := uc.scheduleRepo.ListBlockedTimesByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked times: %v", ErrInternal, err)
	}

	// 6. Agendamentos ativos da data, com a duração do serviço resolvida no JOIN
	appointments, err := uc.appointmentRepo.GetActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Monta os impedimentos do dia
	obstructions, err := collectObstructions(appointments, blocks)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to collect obstructions: %v", err)
		return nil, fmt.Errorf("%w: failed to collect obstructions: %v", ErrInternal, err)
	}

	// Bloqueio de dia inteiro encerra o cálculo
	if obstructions.AllDayBlocked {
		uc.logger.Info("GetAvailableSlots: day %s is fully blocked", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, duration, msgDayBlocked, international), nil
	}

	// 8. Gera os candidatos e filtra os impedidos
	open, err := workingHours.OpenInterval()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid working hours: %v", err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	candidates := generateCandidates(open, duration)
	available, err := filterAvailable(candidates, obstructions)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to filter candidates: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d candidates available on %s",
		len(available), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		Slots:           available,
		DurationMinutes: duration,
		International:   international,
	}, nil
}

// resolveDuration busca a duração do serviço; serviço ausente ou desconhecido
// usa a duração padrão
func (uc *UseCase) resolveDuration(ctx context.Context, serviceID *int64) int {
	if serviceID == nil {
		return domain.DefaultServiceDurationMinutes
	}

	duration, err := uc.catalogRepo.GetDuration(ctx, *serviceID)
	if err != nil {
		if !errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: failed to get duration for service id=%d: %v", *serviceID, err)
		}
		return domain.DefaultServiceDurationMinutes
	}

	return duration
}

func (uc *UseCase) resolveInternational(ctx context.Context, req *Request) (*InternationalInfo, error) {
	window, err := uc.internationalRepo.ResolveForDate(ctx, req.Date)
	if err != nil {
		if errors.Is(err, internationalRepo.ErrWindowNotFound) {
			return nil, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve international window: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve international window: %v", ErrInternal, err)
	}

	return &InternationalInfo{
		CountryCode: window.CountryCode,
		CountryName: window.CountryName,
		FlagEmoji:   window.FlagEmoji,
		City:        window.City,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, duration int, message string, international *InternationalInfo) *Response {
	return &Response{
		Date:            req.Date,
		Slots:           []types.TimeString{},
		DurationMinutes: duration,
		Message:         message,
		International:   international,
	}
}
