package domain

import (
	"errors"
	"time"
)

// ErrInsufficientStock is returned when a decrement would drive
// quantity_available below zero and backorders are disabled.
var ErrInsufficientStock = errors.New("insufficient stock")

// Inventory is the stock of one product at one warehouse.
// One row per (product, warehouse) pair.
type Inventory struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ProductID         uint      `json:"productId" gorm:"not null;uniqueIndex:idx_inventories_product_warehouse"`
	WarehouseID       uint      `json:"warehouseId" gorm:"not null;uniqueIndex:idx_inventories_product_warehouse"`
	QuantityAvailable int       `json:"quantityAvailable" gorm:"not null;default:0"`
	MinimumStockLevel int       `json:"minimumStockLevel" gorm:"not null;default:0"`
	MaximumStockLevel int       `json:"maximumStockLevel" gorm:"not null;default:0"`
	ReorderPoint      int       `json:"reorderPoint" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventories"
}

// StockLine is one (product, quantity) pair of a stock adjustment
type StockLine struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// ThresholdConfig is one entry of a bulk threshold update
type ThresholdConfig struct {
	ID                uint `json:"id"`
	MinimumStockLevel int  `json:"minimumStockLevel"`
	MaximumStockLevel int  `json:"maximumStockLevel"`
	ReorderPoint      int  `json:"reorderPoint"`
}

// InventoryRepository defines the contract for inventory data access
type InventoryRepository interface {
	Increase(warehouseID uint, lines []StockLine) error
	Decrease(warehouseID uint, lines []StockLine) error
	FindByProductAndWarehouse(productID, warehouseID uint) (*Inventory, error)
	FindByWarehouse(warehouseID uint, limit, offset int, order string) ([]InventoryWithProduct, error)
	CountByWarehouse(warehouseID uint) (int64, error)
	UpdateConfigs(configs []ThresholdConfig) error
	Count() (int64, error)
}

// InventoryWithProduct is a stock row joined with its product data
type InventoryWithProduct struct {
	Inventory
	ProductName    string `json:"productName"`
	ProductBarcode string `json:"productBarcode"`
	ProductPrice   int64  `json:"productPrice"`
}
