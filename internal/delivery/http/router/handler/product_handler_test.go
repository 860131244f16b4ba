package handler

import (
	"context"
	"net/http"
	"testing"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalogUsecase records the last list input and returns canned results.
type stubCatalogUsecase struct {
	lastListInput usecase.ListProductsInput
	products      []*entity.Product
	product       *entity.Product
	err           error
}

func (s *stubCatalogUsecase) ListProducts(_ context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	s.lastListInput = input

	return s.products, s.err
}

func (s *stubCatalogUsecase) GetProduct(_ context.Context, _ uuid.UUID) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogUsecase) CreateProduct(_ context.Context, _ usecase.CreateProductInput) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogUsecase) UpdateProduct(_ context.Context, _ uuid.UUID, _ entity.ProductPatch) (*entity.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogUsecase) DeleteProduct(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func TestProductHandler_List_ParsesFilters(t *testing.T) {
	stub := &stubCatalogUsecase{products: []*entity.Product{}}
	h := NewProductHandler(stub, testLogger())

	c, rec := newJSONContext(t, http.MethodGet,
		"/api/products?category=perfumes&search=oud&minPrice=10000&maxPrice=60000&limit=20&offset=40", "")

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "perfumes", stub.lastListInput.Category)
	assert.Equal(t, "oud", stub.lastListInput.Search)
	require.NotNil(t, stub.lastListInput.MinPrice)
	assert.Equal(t, int64(10000), *stub.lastListInput.MinPrice)
	require.NotNil(t, stub.lastListInput.MaxPrice)
	assert.Equal(t, int64(60000), *stub.lastListInput.MaxPrice)
	assert.Equal(t, 20, stub.lastListInput.Limit)
	assert.Equal(t, 40, stub.lastListInput.Offset)
}

func TestProductHandler_List_InvalidMinPrice(t *testing.T) {
	h := NewProductHandler(&stubCatalogUsecase{}, testLogger())

	c, _ := newJSONContext(t, http.MethodGet, "/api/products?minPrice=cheap", "")

	err := h.List(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	h := NewProductHandler(&stubCatalogUsecase{}, testLogger())

	c, _ := newJSONContext(t, http.MethodGet, "/api/products/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductHandler_Create_RejectsNonPositivePrice(t *testing.T) {
	h := NewProductHandler(&stubCatalogUsecase{}, testLogger())

	c, _ := newJSONContext(t, http.MethodPost, "/api/products",
		`{"name":"Montre","price":0,"category":"accessories"}`)

	err := h.Create(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductHandler_Delete_Success(t *testing.T) {
	h := NewProductHandler(&stubCatalogUsecase{}, testLogger())

	id := uuid.New()
	c, rec := newJSONContext(t, http.MethodDelete, "/api/products/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Produit supprimé")
}
