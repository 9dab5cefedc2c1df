package domain

import (
	"time"

	"gorm.io/gorm"
)

// Warehouse represents a physical stock location
type Warehouse struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// WarehouseRepository defines the contract for warehouse data access
type WarehouseRepository interface {
	Create(warehouse *Warehouse) error
	FindByID(id uint) (*Warehouse, error)
	FindAll(limit, offset int, order, search string) ([]Warehouse, error)
	CountFiltered(search string) (int64, error)
	Update(warehouse *Warehouse) error
	Delete(id uint) error
}
