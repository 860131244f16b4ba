package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents one line of a user's cart. At most one line exists per
// (user, product) pair; adding the same product again merges quantities
// instead of creating a duplicate line.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"` // populated when the cart is read with its products
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
