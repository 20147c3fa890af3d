package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/observability"
)

// SMSSender defines the outbound gateway operation used by the
// notification service.
type SMSSender interface {
	Recipient() string
	SendText(body string) (string, error)
}

// NotificationService sends the order-created SMS and records each
// attempt in the sms_notifications table. Delivery is best-effort:
// failures are logged and recorded, never returned to the caller.
type NotificationService struct {
	db      *sqlx.DB
	sender  SMSSender
	metrics *observability.Metrics
}

// NewNotificationService creates a new notification service. The
// metrics may be nil.
func NewNotificationService(db *sqlx.DB, sender SMSSender, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		db:      db,
		sender:  sender,
		metrics: metrics,
	}
}

// OrderCreated sends a human-readable order summary to the configured
// dispatch phone. Exactly one send attempt is made per order.
func (n *NotificationService) OrderCreated(ctx context.Context, order *entities.Order) {
	logger := observability.LoggerFromContext(ctx)

	body := fmt.Sprintf(
		"New water order\nCustomer: %s\nPhone: %s\nHouse: %s\nAmount(in litres): %g",
		order.Name, order.Phone, order.House, order.Amount,
	)

	now := time.Now().UTC()
	notification := &entities.SMSNotification{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Recipient: n.sender.Recipient(),
		Message:   body,
		Status:    entities.NotificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.createNotification(ctx, notification); err != nil {
		logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to record sms notification")
	}

	messageID, sendErr := n.sender.SendText(body)

	now = time.Now().UTC()
	if sendErr != nil {
		errMsg := sendErr.Error()
		notification.Status = entities.NotificationStatusFailed
		notification.FailedAt = &now
		notification.ErrorMessage = &errMsg
		logger.Error().Err(sendErr).Int64("order_id", order.ID).Msg("failed to send order sms")
	} else {
		notification.Status = entities.NotificationStatusSent
		notification.MessageID = &messageID
		notification.SentAt = &now
		logger.Info().Int64("order_id", order.ID).Str("message_id", messageID).Msg("order sms sent")
	}
	notification.UpdatedAt = now

	if n.metrics != nil {
		observability.RecordSMSMetric(ctx, n.metrics, string(notification.Status))
	}

	if err := n.updateNotification(ctx, notification); err != nil {
		logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to update sms notification")
	}
}

func (n *NotificationService) createNotification(ctx context.Context, notification *entities.SMSNotification) error {
	query := `
		INSERT INTO sms_notifications
		(id, order_id, recipient, message, status, message_id, error_message, sent_at, failed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := n.db.ExecContext(ctx, query,
		notification.ID, notification.OrderID, notification.Recipient, notification.Message,
		notification.Status, notification.MessageID, notification.ErrorMessage,
		notification.SentAt, notification.FailedAt, notification.CreatedAt, notification.UpdatedAt,
	)
	return err
}

func (n *NotificationService) updateNotification(ctx context.Context, notification *entities.SMSNotification) error {
	query := `
		UPDATE sms_notifications
		SET status = $1, message_id = $2, error_message = $3, sent_at = $4, failed_at = $5, updated_at = $6
		WHERE id = $7
	`
	_, err := n.db.ExecContext(ctx, query,
		notification.Status, notification.MessageID, notification.ErrorMessage,
		notification.SentAt, notification.FailedAt, notification.UpdatedAt, notification.ID,
	)
	return err
}
