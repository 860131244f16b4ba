package impl

import (
	"context"
	"log/slog"

	"luxe/config"
	deliverycontext "luxe/internal/delivery/context"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"
	"luxe/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fallback shipping policy when the config section is absent.
const (
	defaultFreeShippingThreshold = 50000
	defaultFlatShippingFee       = 7500
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	freeThreshold int64
	flatFee       int64
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	freeThreshold := int64(defaultFreeShippingThreshold)
	flatFee := int64(defaultFlatShippingFee)
	if params.Config != nil && params.Config.Shipping != nil {
		if params.Config.Shipping.FreeThreshold > 0 {
			freeThreshold = params.Config.Shipping.FreeThreshold
		}
		if params.Config.Shipping.FlatFee > 0 {
			flatFee = params.Config.Shipping.FlatFee
		}
	}

	return &orderService{
		orderRepo:     params.OrderRepo,
		cartRepo:      params.CartRepo,
		freeThreshold: freeThreshold,
		flatFee:       flatFee,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder turns the user's cart into an order. The subtotal is computed
// from stored prices, never from client input; sale prices win over regular
// prices. Shipping is free above the configured threshold.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, shipping usecase.ShippingInfo) (*entity.Order, error) {
	cartItems, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(cartItems) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	var subtotal int64
	items := make([]*entity.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		if line.Product == nil {
			return nil, domainerrors.ErrInternalError.WrapMessage("cart line without product: " + line.ID.String())
		}

		unitPrice := line.Product.EffectivePrice()
		subtotal += unitPrice * int64(line.Quantity)
		items = append(items, &entity.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.Product.Name,
			ProductPrice: unitPrice,
			Quantity:     line.Quantity,
		})
	}

	shippingCost := srv.flatFee
	if subtotal >= srv.freeThreshold {
		shippingCost = 0
	}

	order := &entity.Order{
		UserID:       userID,
		TotalAmount:  subtotal + shippingCost,
		ShippingCost: shippingCost,
		FullName:     shipping.FullName,
		Phone:        shipping.Phone,
		Address:      shipping.Address,
		City:         shipping.City,
	}

	if err := srv.orderRepo.Create(ctx, order, items); err != nil {
		return nil, err
	}

	// The order is already placed at this point; a failed cart wipe must not
	// undo it, so it is only logged.
	if _, err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", userID.String()),
		slog.String("totalAmount", util.FormatXAF(order.TotalAmount)),
		slog.String("shippingCost", util.FormatXAF(order.ShippingCost)))

	return order, nil
}

// GetOrder retrieves one order. Reading someone else's order requires the
// admin flag.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != requesterID && !isAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListUserOrders retrieves the user's own orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return srv.orderRepo.FindByUser(ctx, userID)
}
