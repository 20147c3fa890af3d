package repositories

import (
	"context"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback operations.
type FeedbackRepository interface {
	// Create persists the feedback and fills in the store-assigned id
	// and creation timestamp.
	Create(ctx context.Context, feedback *entities.Feedback) error
	// List returns all feedback, newest first (descending created_at).
	List(ctx context.Context) ([]*entities.Feedback, error)
	// GetByID returns the feedback with the given id, or a NOT_FOUND
	// AppError if no such record exists.
	GetByID(ctx context.Context, id int64) (*entities.Feedback, error)
}
