package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/majisafi/waterdelivery/backend/internal/domain/entities"
	apperrors "github.com/majisafi/waterdelivery/backend/pkg/errors"
)

// OrderService defines the order operations used by the handler.
type OrderService interface {
	Create(ctx context.Context, order *entities.Order) error
	List(ctx context.Context) ([]*entities.Order, error)
}

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderRequest struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	House  string  `json:"house"`
	Amount float64 `json:"amount"`
}

// CreateOrder handles POST /order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order := &entities.Order{
		Name:   strings.TrimSpace(payload.Name),
		Phone:  strings.TrimSpace(payload.Phone),
		House:  strings.TrimSpace(payload.House),
		Amount: payload.Amount,
	}

	if err := h.service.Create(r.Context(), order); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order created",
		"order":   order,
	})
}

// ListOrders handles GET /order
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	if orders == nil {
		orders = []*entities.Order{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

// Helper functions

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"message": message,
	})
}

// respondWithAppError maps a service error to an HTTP response:
// VALIDATION -> 400, NOT_FOUND -> 404, everything else -> 500 with the
// underlying error text.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		}
	}

	respondWithJSON(w, http.StatusInternalServerError, map[string]string{
		"message": "Server error",
		"error":   err.Error(),
	})
}
