package get_available_slots

import (
	"github.com/edumrsdw-devops/cadoreClinic/internal/domain"
	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// collectObstructions monta os impedimentos do dia a partir dos agendamentos
// ativos e dos bloqueios cadastrados
func collectObstructions(appointments []*domain.Appointment, blocks []*domain.BlockedTime) (domain.DayObstructions, error) {
	obstructions := domain.DayObstructions{
		Appointments: make([]domain.Interval, 0, len(appointments)),
		PointBlocks:  make([]int, 0),
	}

	for _, appointment := range appointments {
		if !appointment.IsActive() {
			continue
		}

		interval, err := appointment.Interval()
		if err != nil {
			return domain.DayObstructions{}, err
		}
		obstructions.Appointments = append(obstructions.Appointments, interval)
	}

	for _, block := range blocks {
		if block.AllDay {
			obstructions.AllDayBlocked = true
			continue
		}
		if block.BlockTime == nil {
			continue
		}

		minute, err := block.BlockTime.Minutes()
		if err != nil {
			return domain.DayObstructions{}, err
		}
		obstructions.PointBlocks = append(obstructions.PointBlocks, minute)
	}

	return obstructions, nil
}

// generateCandidates gera os candidatos [m, m+duration) a cada 30 minutos
// dentro do horário de funcionamento. O último candidato precisa terminar até
// o fechamento.
func generateCandidates(open domain.Interval, durationMinutes int) []domain.Interval {
	candidates := make([]domain.Interval, 0)

	for m := open.Start; m+durationMinutes <= open.End; m += domain.SlotStepMinutes {
		candidates = append(candidates, domain.Interval{Start: m, End: m + durationMinutes})
	}

	return candidates
}

// filterAvailable remove os candidatos impedidos e devolve os horários de
// início em ordem crescente
func filterAvailable(candidates []domain.Interval, obstructions domain.DayObstructions) ([]types.TimeString, error) {
	available := make([]types.TimeString, 0, len(candidates))

	for _, candidate := range candidates {
		if obstructions.Blocks(candidate) {
			continue
		}

		start, err := types.NewTimeStringFromMinutes(candidate.Start)
		if err != nil {
			return nil, err
		}
		available = append(available, start)
	}

	return available, nil
}
