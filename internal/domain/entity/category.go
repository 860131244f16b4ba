// Package entity contains the core business objects of the project.
package entity

// Category represents the product category enum.
type Category string

const (
	// CategoryClothes indicates clothing products.
	CategoryClothes Category = "clothes"
	// CategoryPerfumes indicates perfume products.
	CategoryPerfumes Category = "perfumes"
	// CategoryAccessories indicates accessory products.
	CategoryAccessories Category = "accessories"

	// CategoryAll is the sentinel value meaning "no category filter".
	// It is never stored on a product.
	CategoryAll Category = "all"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a storable value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryClothes, CategoryPerfumes, CategoryAccessories:
		return true
	default:
		return false
	}
}
