package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data required to add a product to a cart.
// Quantity defaults to 1 when the client omits it.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase defines the interface for cart operations. Every operation is
// scoped to the authenticated user's own cart.
type CartUsecase interface {
	// GetCart returns every line of the user's cart, each joined with its product.
	GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddToCart adds a product to the cart. If the product is already in the
	// cart, the requested quantity is added to the existing line instead of
	// creating a duplicate.
	AddToCart(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*entity.CartItem, error)

	// UpdateQuantity replaces the quantity of a cart line.
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*entity.CartItem, error)

	// RemoveItem deletes one cart line. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, itemID uuid.UUID) error

	// ClearCart empties the user's cart. Clearing an empty cart is not an error.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
