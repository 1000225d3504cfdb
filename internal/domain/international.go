package domain

import "time"

// InternationalWindow represents a travel window during which appointments
// happen at an international location. The date range is inclusive on both ends.
type InternationalWindow struct {
	ID          int64
	CountryCode string
	CountryName string
	FlagEmoji   string
	StartDate   time.Time
	EndDate     time.Time
	City        *string
	Active      bool
	CreatedAt   time.Time
}

// Covers reports whether the given date falls inside the window (inclusive)
func (w *InternationalWindow) Covers(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(dateOnly(w.StartDate)) && !d.After(dateOnly(w.EndDate))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
