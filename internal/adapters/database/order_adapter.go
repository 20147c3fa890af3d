package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/domain/repositories"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

// OrderAdapter implements order persistence in Postgres.
type OrderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOrderAdapter creates a new order adapter.
func NewOrderAdapter(client *postgres.Client) repositories.OrderRepository {
	return &OrderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts an order record and fills in the store-assigned id.
func (a *OrderAdapter) Create(ctx context.Context, order *entities.Order) error {
	if order == nil {
		return apperrors.NewInternalError("order is nil", fmt.Errorf("order is nil"))
	}

	record := goqu.Record{
		"name":   order.Name,
		"phone":  order.Phone,
		"house":  order.House,
		"amount": order.Amount,
	}

	query, args, err := a.db.Insert("orders").Rows(record).Returning("id").ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build order insert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&order.ID); err != nil {
		return apperrors.NewInternalError("failed to create order", err)
	}

	return nil
}

// List retrieves all orders, newest first.
func (a *OrderAdapter) List(ctx context.Context) ([]*entities.Order, error) {
	query, args, err := a.db.Select(
		"id", "name", "phone", "house", "amount",
	).From("orders").
		Order(goqu.I("id").Desc()).
		ToSQL()

	if err != nil {
		return nil, apperrors.NewInternalError("failed to build order list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list orders", err)
	}
	defer rows.Close()

	var orders []*entities.Order
	for rows.Next() {
		order := &entities.Order{}

		err := rows.Scan(
			&order.ID,
			&order.Name,
			&order.Phone,
			&order.House,
			&order.Amount,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan order", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate orders", err)
	}

	return orders, nil
}
