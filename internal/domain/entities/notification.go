package entities

import "time"

// NotificationStatus represents the delivery status
type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// SMSNotification tracks one outbound SMS attempt for an order.
type SMSNotification struct {
	ID           string             `json:"id" db:"id"`
	OrderID      int64              `json:"order_id" db:"order_id"`
	Recipient    string             `json:"recipient" db:"recipient"`
	Message      string             `json:"message" db:"message"`
	Status       NotificationStatus `json:"status" db:"status"`
	MessageID    *string            `json:"message_id,omitempty" db:"message_id"`
	ErrorMessage *string            `json:"error_message,omitempty" db:"error_message"`
	SentAt       *time.Time         `json:"sent_at,omitempty" db:"sent_at"`
	FailedAt     *time.Time         `json:"failed_at,omitempty" db:"failed_at"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" db:"updated_at"`
}
