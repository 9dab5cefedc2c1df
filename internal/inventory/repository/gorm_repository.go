package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/inventory/domain"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db             *gorm.DB
	allowBackorder bool
}

// NewGormInventoryRepository creates a new GORM inventory repository
func NewGormInventoryRepository(db *gorm.DB, allowBackorder bool) *GormInventoryRepository {
	return &GormInventoryRepository{db: db, allowBackorder: allowBackorder}
}

// ApplyIncrease adds quantities to the (product, warehouse) rows, creating
// missing rows with zeroed thresholds. It runs against the given handle so
// callers can compose it into their own transactions.
func ApplyIncrease(tx *gorm.DB, warehouseID uint, lines []domain.StockLine) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive for product %d", line.ProductID)
		}

		res := tx.Model(&domain.Inventory{}).
			Where("product_id = ? AND warehouse_id = ?", line.ProductID, warehouseID).
			UpdateColumn("quantity_available", gorm.Expr("quantity_available + ?", line.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to increase stock for product %d: %w", line.ProductID, res.Error)
		}

		if res.RowsAffected == 0 {
			row := domain.Inventory{
				ProductID:         line.ProductID,
				WarehouseID:       warehouseID,
				QuantityAvailable: line.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create inventory row for product %d: %w", line.ProductID, err)
			}
		}
	}
	return nil
}

// ApplyDecrease subtracts quantities from the (product, warehouse) rows.
// Unless allowBackorder is set, the update is guarded so quantity_available
// can never go below zero; an over-sell or a missing row is
// ErrInsufficientStock. Runs against the given handle for the same reason
// as ApplyIncrease.
func ApplyDecrease(tx *gorm.DB, warehouseID uint, lines []domain.StockLine, allowBackorder bool) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("quantity must be positive for product %d", line.ProductID)
		}

		q := tx.Model(&domain.Inventory{}).
			Where("product_id = ? AND warehouse_id = ?", line.ProductID, warehouseID)
		if !allowBackorder {
			q = q.Where("quantity_available >= ?", line.Quantity)
		}

		res := q.UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", line.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to decrease stock for product %d: %w", line.ProductID, res.Error)
		}

		if res.RowsAffected == 0 {
			if allowBackorder {
				// No row yet: a backorder starts from zero
				row := domain.Inventory{
					ProductID:         line.ProductID,
					WarehouseID:       warehouseID,
					QuantityAvailable: -line.Quantity,
				}
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("failed to create inventory row for product %d: %w", line.ProductID, err)
				}
				continue
			}
			return fmt.Errorf("product %d at warehouse %d: %w", line.ProductID, warehouseID, domain.ErrInsufficientStock)
		}
	}
	return nil
}

// Increase applies a stock increase in its own transaction
func (r *GormInventoryRepository) Increase(warehouseID uint, lines []domain.StockLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ApplyIncrease(tx, warehouseID, lines)
	})
}

// Decrease applies a stock decrease in its own transaction
func (r *GormInventoryRepository) Decrease(warehouseID uint, lines []domain.StockLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return ApplyDecrease(tx, warehouseID, lines, r.allowBackorder)
	})
}

// FindByProductAndWarehouse retrieves the stock row for a (product, warehouse) pair
func (r *GormInventoryRepository) FindByProductAndWarehouse(productID, warehouseID uint) (*domain.Inventory, error) {
	var inventory domain.Inventory
	err := r.db.Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&inventory).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// FindByWarehouse lists stock rows for a warehouse joined with product data
func (r *GormInventoryRepository) FindByWarehouse(warehouseID uint, limit, offset int, order string) ([]domain.InventoryWithProduct, error) {
	var rows []domain.InventoryWithProduct
	err := r.db.Model(&domain.Inventory{}).
		Select("inventories.*, products.name AS product_name, products.barcode AS product_barcode, products.price AS product_price").
		Joins("JOIN products ON products.id = inventories.product_id AND products.deleted_at IS NULL").
		Where("inventories.warehouse_id = ?", warehouseID).
		Order("inventories." + order).
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// CountByWarehouse counts stock rows for a warehouse using the same predicate as FindByWarehouse
func (r *GormInventoryRepository) CountByWarehouse(warehouseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Inventory{}).
		Joins("JOIN products ON products.id = inventories.product_id AND products.deleted_at IS NULL").
		Where("inventories.warehouse_id = ?", warehouseID).
		Count(&count).Error
	return count, err
}

// UpdateConfigs bulk-updates threshold fields by inventory id
func (r *GormInventoryRepository) UpdateConfigs(configs []domain.ThresholdConfig) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, cfg := range configs {
			res := tx.Model(&domain.Inventory{}).
				Where("id = ?", cfg.ID).
				Updates(map[string]interface{}{
					"minimum_stock_level": cfg.MinimumStockLevel,
					"maximum_stock_level": cfg.MaximumStockLevel,
					"reorder_point":       cfg.ReorderPoint,
				})
			if res.Error != nil {
				return fmt.Errorf("failed to update inventory %d: %w", cfg.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("inventory %d: %w", cfg.ID, gorm.ErrRecordNotFound)
			}
		}
		return nil
	})
}

// Count returns the total number of inventory rows
func (r *GormInventoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Inventory{}).Count(&count).Error
	return count, err
}
