package impl

import (
	"context"
	"testing"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockCartRepository
	productRepo *mockProductRepository
}

func createTestCartService(_ *testing.T) cartServiceFixtures {
	cartRepo := new(mockCartRepository)
	productRepo := new(mockProductRepository)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddToCart_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Parfum Oud", Price: 35000}

	fx.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.cartRepo.On("FindByUserAndProduct", ctx, userID, product.ID).
		Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.On("Create", ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
		return item.UserID == userID && item.ProductID == product.ID && item.Quantity == 2
	})).Return(nil)

	item, err := fx.service.AddToCart(ctx, userID, usecase.AddToCartInput{
		ProductID: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, product, item.Product)
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Parfum Oud", Price: 35000}
	existing := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  2,
	}
	merged := &entity.CartItem{
		ID:        existing.ID,
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  5,
	}

	fx.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.cartRepo.On("FindByUserAndProduct", ctx, userID, product.ID).Return(existing, nil)
	fx.cartRepo.On("UpdateQuantity", ctx, existing.ID, 5).Return(merged, nil)

	item, err := fx.service.AddToCart(ctx, userID, usecase.AddToCartInput{
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
	fx.cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Parfum Oud", Price: 35000}

	fx.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	fx.cartRepo.On("FindByUserAndProduct", ctx, userID, product.ID).
		Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.On("Create", ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
		return item.Quantity == 1
	})).Return(nil)

	item, err := fx.service.AddToCart(ctx, userID, usecase.AddToCartInput{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_AddToCart_NegativeQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddToCart(context.Background(), uuid.New(), usecase.AddToCartInput{
		ProductID: uuid.New(),
		Quantity:  -2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("FindByID", ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddToCart(ctx, uuid.New(), usecase.AddToCartInput{ProductID: productID})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateQuantity_RejectsBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	for _, quantity := range []int{0, -1} {
		_, err := fx.service.UpdateQuantity(context.Background(), uuid.New(), quantity)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	}
	fx.cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.On("UpdateQuantity", ctx, itemID, 3).Return(nil, repository.ErrCartItemNotFound)

	_, err := fx.service.UpdateQuantity(ctx, itemID, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveItem_AbsentLineIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.On("Delete", ctx, itemID).Return(false, nil)

	require.NoError(t, fx.service.RemoveItem(ctx, itemID))
}

func TestCartService_ClearCart_EmptyCartIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.On("DeleteByUser", ctx, userID).Return(false, nil)

	require.NoError(t, fx.service.ClearCart(ctx, userID))
}
