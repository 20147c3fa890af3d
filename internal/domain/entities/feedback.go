package entities

import "time"

// Feedback captures a free-form message left by a customer.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
