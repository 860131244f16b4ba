package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"luxe/internal/delivery/http/response"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createProductRequest is the payload of POST /api/products.
type createProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	SalePrice   *int64 `json:"salePrice" validate:"omitempty,gt=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Materials   string `json:"materials"`
	Care        string `json:"care"`
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles catalog browsing with optional filters.
func (h *ProductHandler) List(c echo.Context) error {
	input := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	var err error
	if input.MinPrice, err = optionalInt64Param(c, "minPrice"); err != nil {
		return err
	}
	if input.MaxPrice, err = optionalInt64Param(c, "maxPrice"); err != nil {
		return err
	}
	if input.Limit, err = intParam(c, "limit"); err != nil {
		return err
	}
	if input.Offset, err = intParam(c, "offset"); err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get handles a single product read.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create adds a product to the catalog. Admin only.
func (h *ProductHandler) Create(c echo.Context) error {
	var input createProductRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SalePrice:   input.SalePrice,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Materials:   input.Materials,
		Care:        input.Care,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Produit créé")
}

// Update applies a partial update to a product. Admin only.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	var patch entity.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product payload")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Produit mis à jour")
}

// Delete removes a product from the catalog. Admin only.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrProductNotFound
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Produit supprimé")
}

// optionalInt64Param parses an optional numeric query parameter.
func optionalInt64Param(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid value for " + name)
	}

	return &value, nil
}

// intParam parses an optional integer query parameter, defaulting to zero.
func intParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid value for " + name)
	}

	return value, nil
}
