package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a placed order. Amounts are computed server-side at
// creation and immutable afterwards.
type Order struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	TotalAmount  int64        `json:"totalAmount"`
	ShippingCost int64        `json:"shippingCost"`
	FullName     string       `json:"fullName"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	Items        []*OrderItem `json:"items,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// OrderItem snapshots a product at purchase time. Name and price are copied
// from the product so later catalog edits do not rewrite order history.
type OrderItem struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"orderId"`
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	ProductPrice int64     `json:"productPrice"`
	Quantity     int       `json:"quantity"`
}
