package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput narrows a catalog listing. Zero values mean "no filter".
type ListProductsInput struct {
	Category string
	Search   string
	MinPrice *int64
	MaxPrice *int64
	Limit    int
	Offset   int
}

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	SalePrice   *int64
	Category    string
	ImageURL    string
	Materials   string
	Care        string
}

// CatalogUsecase defines the interface for catalog browsing and management.
// Listing and reads are public; writes are reserved to administrators and
// guarded at the delivery layer.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
