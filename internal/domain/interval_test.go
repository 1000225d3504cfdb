package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval("10:00", 60)
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 600, End: 660}, interval)

	_, err = NewInterval("bad", 60)
	assert.Error(t, err)
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: 600, End: 660} // [10:00, 11:00)

	cases := []struct {
		name     string
		other    Interval
		expected bool
	}{
		{"identical", Interval{600, 660}, true},
		{"partial overlap at start", Interval{570, 630}, true},
		{"partial overlap at end", Interval{630, 690}, true},
		{"fully contained", Interval{615, 645}, true},
		{"fully containing", Interval{540, 720}, true},
		{"touching before", Interval{540, 600}, false},
		{"touching after", Interval{660, 720}, false},
		{"disjoint before", Interval{480, 540}, false},
		{"disjoint after", Interval{720, 780}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Overlaps(tc.other))
			// sobreposição é simétrica
			assert.Equal(t, tc.expected, tc.other.Overlaps(base))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	interval := Interval{Start: 600, End: 660}

	assert.True(t, interval.Contains(600))
	assert.True(t, interval.Contains(630))
	assert.True(t, interval.Contains(659))
	// semiaberto: o fim não pertence ao intervalo
	assert.False(t, interval.Contains(660))
	assert.False(t, interval.Contains(599))
}

func TestIntervalStartTime(t *testing.T) {
	start, err := Interval{Start: 870, End: 930}.StartTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:30"), start)
}

func TestDayObstructionsBlocks(t *testing.T) {
	t.Run("all day blocked wins over everything", func(t *testing.T) {
		o := DayObstructions{AllDayBlocked: true}
		assert.True(t, o.Blocks(Interval{Start: 600, End: 660}))
	})

	t.Run("appointment overlap", func(t *testing.T) {
		o := DayObstructions{Appointments: []Interval{{Start: 600, End: 660}}}
		assert.True(t, o.Blocks(Interval{Start: 630, End: 690}))
		assert.False(t, o.Blocks(Interval{Start: 660, End: 720}))
	})

	t.Run("point block", func(t *testing.T) {
		o := DayObstructions{PointBlocks: []int{870}}
		assert.True(t, o.Blocks(Interval{Start: 840, End: 900}))
		assert.False(t, o.Blocks(Interval{Start: 810, End: 870}))
		assert.False(t, o.Blocks(Interval{Start: 900, End: 960}))
	})

	t.Run("empty obstructions block nothing", func(t *testing.T) {
		o := DayObstructions{}
		assert.False(t, o.Blocks(Interval{Start: 540, End: 600}))
	})
}

func TestWorkingHoursOpenInterval(t *testing.T) {
	w := WorkingHours{StartTime: "09:00", EndTime: "18:00", Active: true}
	open, err := w.OpenInterval()
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 540, End: 1080}, open)
}

func TestAppointmentIsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
}

func TestAppointmentInterval(t *testing.T) {
	a := &Appointment{StartTime: "10:00", ServiceDurationMinutes: 45}
	interval, err := a.Interval()
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 600, End: 645}, interval)

	// sem duração resolvida usa a padrão
	a = &Appointment{StartTime: "10:00"}
	interval, err = a.Interval()
	require.NoError(t, err)
	assert.Equal(t, Interval{Start: 600, End: 600 + DefaultServiceDurationMinutes}, interval)
}
