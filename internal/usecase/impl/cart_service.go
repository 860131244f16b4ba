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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns every line of the user's cart with product details attached.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	return srv.cartRepo.FindByUser(ctx, userID)
}

// AddToCart adds a product to the user's cart. A product already present in
// the cart gets its quantity increased instead of a second line.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product for cart")
	}

	existing, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err == nil {
		merged, err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
		if err != nil {
			return nil, err
		}
		merged.Product = product

		return merged, nil
	}
	if !errors.Is(err, repository.ErrCartItemNotFound) {
		return nil, errors.Wrap(err, "failed to check cart for product")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  quantity,
	}
	if err := srv.cartRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}
	item.Product = product

	srv.log(ctx).Info("Cart item added",
		slog.String("userID", userID.String()),
		slog.String("productID", input.ProductID.String()),
		slog.Int("quantity", item.Quantity))

	return item, nil
}

// UpdateQuantity replaces the quantity of a cart line.
func (srv *cartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	item, err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, err
	}

	return item, nil
}

// RemoveItem deletes one cart line. An absent line counts as already removed.
func (srv *cartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if _, err := srv.cartRepo.Delete(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart empties the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
