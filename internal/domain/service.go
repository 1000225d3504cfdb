package domain

import "time"

// Service represents a clinic service offered for booking.
// Duration drives the interval length of every slot computation.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           *float64
	// Active soft-delete: serviços referenciados por agendamentos nunca são
	// removidos fisicamente, apenas desativados
	Active    bool
	SortOrder int
	CreatedAt time.Time
}

// ServiceUpdate partial update issued by the admin panel (nil = keep current value)
type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
	Active          *bool
}
