package handler

import (
	"log/slog"
	"net/http"

	"luxe/internal/delivery/http/middleware"
	"luxe/internal/delivery/http/response"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addToCartRequest is the payload of POST /api/cart.
type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// updateCartItemRequest is the payload of PATCH /api/cart/:id.
type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns every line of the authenticated user's cart.
func (h *CartHandler) Get(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	items, err := h.uc.GetCart(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Add puts a product in the cart, merging with an existing line if any.
func (h *CartHandler) Add(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var input addToCartRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product id")
	}

	item, err := h.uc.AddToCart(c.Request().Context(), claims.UserID, usecase.AddToCartInput{
		ProductID: productID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Article ajouté au panier")
}

// UpdateQuantity replaces the quantity of one cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCartItemNotFound
	}

	var input updateCartItemRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid cart payload")
	}

	item, err := h.uc.UpdateQuantity(c.Request().Context(), itemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Quantité mise à jour")
}

// Remove deletes one cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrCartItemNotFound
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Article retiré du panier")
}

// Clear empties the authenticated user's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	if err := h.uc.ClearCart(c.Request().Context(), claims.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Panier vidé")
}
