package providers

import (
	"context"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
)

// OrderNotifier sends a best-effort notification about a newly created
// order. Implementations must never propagate delivery failures to the
// caller; a failed send is logged and otherwise swallowed.
type OrderNotifier interface {
	OrderCreated(ctx context.Context, order *entities.Order)
}
