package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Prices are whole XAF amounts.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       int64     `gorm:"not null"`
	SalePrice   *int64
	Category    string `gorm:"type:varchar(32);not null;index"`
	ImageURL    string `gorm:"type:varchar(512)"`
	Materials   string `gorm:"type:text"`
	Care        string `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
