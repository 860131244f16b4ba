package postgres

import (
	"context"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order row, then its item rows. The inserts run
// sequentially, not in one transaction; an item insert failure leaves the
// order row behind without a compensating rollback.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	itemModels := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		item.OrderID = orderM.ID
		itemModels = append(itemModels, model.OrderItemModel{
			OrderID:      orderM.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i := range itemModels {
		items[i].ID = itemModels[i].ID
	}
	order.Items = items

	return nil
}

// FindByID retrieves an order together with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByUser retrieves a user's orders, newest first, without items.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, &entity.OrderItem{
			ID:           itemM.ID,
			OrderID:      itemM.OrderID,
			ProductID:    itemM.ProductID,
			ProductName:  itemM.ProductName,
			ProductPrice: itemM.ProductPrice,
			Quantity:     itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		TotalAmount:  data.TotalAmount,
		ShippingCost: data.ShippingCost,
		FullName:     data.FullName,
		Phone:        data.Phone,
		Address:      data.Address,
		City:         data.City,
		Items:        items,
		CreatedAt:    data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		TotalAmount:  data.TotalAmount,
		ShippingCost: data.ShippingCost,
		FullName:     data.FullName,
		Phone:        data.Phone,
		Address:      data.Address,
		City:         data.City,
	}
}
