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

// createOrderRequest is the payload of POST /api/orders.
type createOrderRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
}

// OrderHandler holds dependencies for checkout and order history handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create places an order from the authenticated user's cart.
func (h *OrderHandler) Create(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var input createOrderRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid order payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), claims.UserID, usecase.ShippingInfo{
		FullName: input.FullName,
		Phone:    input.Phone,
		Address:  input.Address,
		City:     input.City,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Commande enregistrée")
}

// List returns the authenticated user's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), claims.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one order with its items, for its owner or an administrator.
func (h *OrderHandler) Get(c echo.Context) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrOrderNotFound
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, claims.UserID, claims.IsAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}
