package impl

import (
	"context"
	"log/slog"

	deliverycontext "luxe/internal/delivery/context"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// parseCategory turns a raw query value into a category filter. Empty and
// "all" disable the filter; anything else must be a known category.
func parseCategory(raw string) (entity.Category, error) {
	category := entity.Category(raw)
	if raw == "" || category == entity.CategoryAll {
		return entity.CategoryAll, nil
	}

	if !category.IsValid() {
		return entity.CategoryAll, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + raw)
	}

	return category, nil
}

// ListProducts returns catalog entries matching the filters, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	category, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	filter := repository.ProductFilter{
		Category: category,
		Search:   input.Search,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	return srv.productRepo.List(ctx, filter)
}

// GetProduct retrieves a single catalog entry.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a new entry to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + input.Category)
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		Category:    category,
		ImageURL:    input.ImageURL,
		Materials:   input.Materials,
		Care:        input.Care,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a partial update to an existing entry and returns
// the merged result.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) (*entity.Product, error) {
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + patch.Category.String())
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	patch.Apply(product)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// DeleteProduct removes an entry from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	deleted, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	if !deleted {
		return domainerrors.ErrProductNotFound
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}
