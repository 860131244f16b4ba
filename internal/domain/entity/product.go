package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item of the catalog. Prices are stored as whole
// XAF amounts, so int64 is exact and no decimal type is needed.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	SalePrice   *int64    `json:"salePrice"` // nil when the product is not discounted
	Category    Category  `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	Materials   string    `json:"materials"`
	Care        string    `json:"care"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EffectivePrice returns the sale price when present, otherwise the regular price.
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}

	return p.Price
}

// ProductPatch lists the optional fields of a partial product update.
// Only non-nil fields are applied to the stored row.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int64    `json:"price"`
	SalePrice   *int64    `json:"salePrice"`
	Category    *Category `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	Materials   *string   `json:"materials"`
	Care        *string   `json:"care"`
}

// Apply merges the patch into the product, field by field.
func (patch *ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		p.SalePrice = patch.SalePrice
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Materials != nil {
		p.Materials = *patch.Materials
	}
	if patch.Care != nil {
		p.Care = *patch.Care
	}
}
