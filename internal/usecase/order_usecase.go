package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingInfo carries the delivery details captured at checkout.
type ShippingInfo struct {
	FullName string
	Phone    string
	Address  string
	City     string
}

// OrderUsecase defines the interface for checkout and order history.
type OrderUsecase interface {
	// CreateOrder turns the user's current cart into an order. Amounts are
	// computed server-side from stored prices; the cart is emptied afterwards.
	CreateOrder(ctx context.Context, userID uuid.UUID, shipping ShippingInfo) (*entity.Order, error)

	// GetOrder retrieves one order with its items. Only the order's owner or
	// an administrator may read it.
	GetOrder(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error)

	// ListUserOrders retrieves the user's own orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
