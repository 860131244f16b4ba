package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	// Category filters by exact match. Empty or entity.CategoryAll disables the filter.
	Category entity.Category

	// Search matches name OR description by case-insensitive substring.
	Search string

	// MinPrice/MaxPrice bound the regular price, inclusive on both ends.
	MinPrice *int64
	MaxPrice *int64

	// Limit/Offset paginate. Limit 0 returns everything.
	Limit  int
	Offset int
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves the full state of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product permanently. It reports whether a row matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
