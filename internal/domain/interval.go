package domain

import (
	"fmt"

	"github.com/edumrsdw-devops/cadoreClinic/pkg/types"
)

// Interval represents a half-open time interval [Start, End) in minutes since midnight.
// All slot and conflict computations in the system are expressed over this type.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from a start time and a duration in minutes
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval start: %w", err)
	}
	return Interval{Start: startMin, End: startMin + durationMinutes}, nil
}

// Overlaps reports whether two half-open intervals truly overlap.
// Touching boundaries (a ends exactly where b starts) do NOT overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether the given minute of day falls inside the interval
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// Duration returns the interval length in minutes
func (i Interval) Duration() int {
	return i.End - i.Start
}

// StartTime returns the interval start as "HH:MM"
func (i Interval) StartTime() (types.TimeString, error) {
	return types.NewTimeStringFromMinutes(i.Start)
}
