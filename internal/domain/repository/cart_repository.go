package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByUser retrieves every cart line of a user, each joined with its product.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndProduct retrieves the single line for a (user, product) pair,
	// or ErrCartItemNotFound when the product is not in the cart.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// Create inserts a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of an existing line.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*entity.CartItem, error)

	// Delete removes one line. It reports whether a row matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteByUser removes every line of a user's cart. It reports whether any row matched.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
