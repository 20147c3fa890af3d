package services

import (
	"context"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/domain/providers"
	"github.com/majisafi/waterdelivery/backend/internal/domain/repositories"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

// OrderService handles order creation and listing.
type OrderService struct {
	repo     repositories.OrderRepository
	notifier providers.OrderNotifier
}

// NewOrderService creates a new order service. The notifier may be nil
// when SMS delivery is not configured.
func NewOrderService(repo repositories.OrderRepository, notifier providers.OrderNotifier) *OrderService {
	return &OrderService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create validates and persists an order, then dispatches a
// fire-and-forget notification. The notification outcome never affects
// the returned result: once the insert succeeds the order is created.
func (s *OrderService) Create(ctx context.Context, order *entities.Order) error {
	if order.Name == "" || order.Phone == "" || order.House == "" || order.Amount <= 0 {
		return apperrors.NewValidationError("Missing required fields")
	}

	// TODO: enforce one open order per phone once product confirms the
	// intended uniqueness rule for the orders.phone column.

	if err := s.repo.Create(ctx, order); err != nil {
		return err
	}

	if s.notifier != nil {
		// Detached from the request context so a slow gateway cannot be
		// cancelled by, or hold up, the enclosing request.
		notifyCtx := context.WithoutCancel(ctx)
		created := *order
		go s.notifier.OrderCreated(notifyCtx, &created)
	}

	return nil
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]*entities.Order, error) {
	return s.repo.List(ctx)
}
