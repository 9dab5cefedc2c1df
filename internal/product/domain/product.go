package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Barcode     string         `json:"barcode" gorm:"index"`
	Price       int64          `json:"price" gorm:"not null"` // smallest currency unit
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByIDs(ids []uint) ([]Product, error)
	FindAll(limit, offset int, order, search string) ([]Product, error)
	CountFiltered(search string) (int64, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
}
