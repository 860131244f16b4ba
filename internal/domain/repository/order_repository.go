package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists the order row, then its item rows. The two inserts are
	// sequential, not one transaction; an item insert failure leaves the
	// order without items.
	Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error

	// FindByID retrieves an order together with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first, without items.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
