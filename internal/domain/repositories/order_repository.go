package repositories

import (
	"context"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists the order and fills in the store-assigned id.
	Create(ctx context.Context, order *entities.Order) error
	// List returns all orders, newest first (descending id).
	List(ctx context.Context) ([]*entities.Order, error)
}
