package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Rows are written once and never updated.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalAmount  int64     `gorm:"not null"`
	ShippingCost int64     `gorm:"not null"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64);not null"`
	Address      string    `gorm:"type:varchar(512);not null"`
	City         string    `gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and price are
// snapshots taken at purchase time.
type OrderItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductName  string    `gorm:"type:varchar(255);not null"`
	ProductPrice int64     `gorm:"not null"`
	Quantity     int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
