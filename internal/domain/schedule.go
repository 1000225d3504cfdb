package domain

import (
	"time"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// WorkingHours represents the opening interval of the clinic for one weekday.
// DayOfWeek follows the 0=Sunday..6=Saturday convention. At most one active
// row per weekday is authoritative; no active row means the day is closed.
type WorkingHours struct {
	ID        int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
}

// OpenInterval returns the [start, end) open interval of the day in minutes
func (w *WorkingHours) OpenInterval() (Interval, error) {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// BlockedTime represents an administrative block on a date.
// An all-day block invalidates the whole date; a point block occupies a single
// minute and invalidates any candidate slot whose interval contains it.
type BlockedTime struct {
	ID        int64
	Date      time.Time
	BlockTime *types.TimeString
	AllDay    bool
	Reason    *string
	CreatedAt time.Time
}

// DayObstructions obstruções de uma data coletadas para o cálculo de vagas
type DayObstructions struct {
	// Appointments agendamentos não cancelados já expandidos em intervalos
	Appointments []Interval
	// AllDayBlocked a data inteira está bloqueada
	AllDayBlocked bool
	// PointBlocks minutos bloqueados pontualmente, em ordem crescente
	PointBlocks []int
}

// Blocks reports whether the candidate interval collides with any obstruction
func (o *DayObstructions) Blocks(candidate Interval) bool {
	if o.AllDayBlocked {
		return true
	}
	for _, appt := range o.Appointments {
		if candidate.Overlaps(appt) {
			return true
		}
	}
	for _, minute := range o.PointBlocks {
		if candidate.Contains(minute) {
			return true
		}
	}
	return false
}
