package domain

import "time"

// ContactMessage represents a message sent through the public contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	Message   string
	Read      bool
	CreatedAt time.Time
}
