package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	"github.com/majisafi/waterdelivery/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

func setupOrderAdapter(t *testing.T) (*OrderAdapter, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	adapter := NewOrderAdapter(postgres.NewClientFromDB(db)).(*OrderAdapter)
	return adapter, mock
}

func TestOrderAdapter_Create_AssignsID(t *testing.T) {
	adapter, mock := setupOrderAdapter(t)

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	order := &entities.Order{
		Name:   "Alice",
		Phone:  "0711000000",
		House:  "12B",
		Amount: 20,
	}

	err := adapter.Create(context.Background(), order)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_Create_NilOrder(t *testing.T) {
	adapter, _ := setupOrderAdapter(t)

	err := adapter.Create(context.Background(), nil)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestOrderAdapter_Create_StoreError(t *testing.T) {
	adapter, mock := setupOrderAdapter(t)

	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnError(errors.New("connection refused"))

	err := adapter.Create(context.Background(), &entities.Order{
		Name:   "Alice",
		Phone:  "0711000000",
		House:  "12B",
		Amount: 20,
	})

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestOrderAdapter_List_NewestFirst(t *testing.T) {
	adapter, mock := setupOrderAdapter(t)

	rows := sqlmock.NewRows([]string{"id", "name", "phone", "house", "amount"}).
		AddRow(int64(3), "Carol", "0733000000", "3C", 30.0).
		AddRow(int64(2), "Bob", "0722000000", "2B", 25.0).
		AddRow(int64(1), "Alice", "0711000000", "1A", 20.0)

	mock.ExpectQuery(`SELECT .+ FROM "orders" ORDER BY "id" DESC`).
		WillReturnRows(rows)

	orders, err := adapter.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, int64(3), orders[0].ID)
	assert.Equal(t, "Carol", orders[0].Name)
	assert.Equal(t, int64(1), orders[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_List_Empty(t *testing.T) {
	adapter, mock := setupOrderAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "orders" ORDER BY "id" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "house", "amount"}))

	orders, err := adapter.List(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, orders)
}
