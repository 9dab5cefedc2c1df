package repository

import (
	"fmt"

	"gorm.io/gorm"

	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	invrepo "github.com/bizstack/backoffice/internal/inventory/repository"
	"github.com/bizstack/backoffice/internal/receipt/domain"
)

// GormGoodsReceiptRepository implements GoodsReceiptRepository using GORM
type GormGoodsReceiptRepository struct {
	db             *gorm.DB
	allowBackorder bool
}

// NewGormGoodsReceiptRepository creates a new GORM goods-receipt repository
func NewGormGoodsReceiptRepository(db *gorm.DB, allowBackorder bool) *GormGoodsReceiptRepository {
	return &GormGoodsReceiptRepository{db: db, allowBackorder: allowBackorder}
}

func stockLines(details []domain.GoodsReceiptDetail) []invdomain.StockLine {
	lines := make([]invdomain.StockLine, 0, len(details))
	for _, detail := range details {
		lines = append(lines, invdomain.StockLine{
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
		})
	}
	return lines
}

// Create persists the receipt with its line items and increments stock for
// every line, in one transaction. Missing inventory rows are created with
// the received quantity.
func (r *GormGoodsReceiptRepository) Create(receipt *domain.GoodsReceipt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			return fmt.Errorf("failed to create goods receipt: %w", err)
		}
		return invrepo.ApplyIncrease(tx, receipt.WarehouseID, stockLines(receipt.Details))
	})
}

// Update replaces the receipt's line set and reconciles inventory by the
// per-product delta only, so quantities are never double-applied.
func (r *GormGoodsReceiptRepository) Update(id uint, details []domain.GoodsReceiptDetail) (*domain.GoodsReceipt, error) {
	var receipt domain.GoodsReceipt

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Details").First(&receipt, id).Error; err != nil {
			return err
		}

		// Per-product delta between new and old quantities
		deltas := make(map[uint]int)
		for _, detail := range receipt.Details {
			deltas[detail.ProductID] -= detail.Quantity
		}
		for _, detail := range details {
			deltas[detail.ProductID] += detail.Quantity
		}

		var increases, decreases []invdomain.StockLine
		for productID, delta := range deltas {
			switch {
			case delta > 0:
				increases = append(increases, invdomain.StockLine{ProductID: productID, Quantity: delta})
			case delta < 0:
				decreases = append(decreases, invdomain.StockLine{ProductID: productID, Quantity: -delta})
			}
		}

		if len(increases) > 0 {
			if err := invrepo.ApplyIncrease(tx, receipt.WarehouseID, increases); err != nil {
				return err
			}
		}
		if len(decreases) > 0 {
			if err := invrepo.ApplyDecrease(tx, receipt.WarehouseID, decreases, r.allowBackorder); err != nil {
				return err
			}
		}

		// Replace the line set
		if err := tx.Where("goods_receipt_id = ?", receipt.ID).
			Delete(&domain.GoodsReceiptDetail{}).Error; err != nil {
			return fmt.Errorf("failed to clear receipt details: %w", err)
		}
		for i := range details {
			details[i].ID = 0
			details[i].GoodsReceiptID = receipt.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("failed to recreate receipt details: %w", err)
		}

		receipt.Details = details
		return tx.Model(&receipt).Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
	})
	if err != nil {
		return nil, err
	}

	return &receipt, nil
}

// FindByID retrieves a receipt with its line items
func (r *GormGoodsReceiptRepository) FindByID(id uint) (*domain.GoodsReceipt, error) {
	var receipt domain.GoodsReceipt
	if err := r.db.Preload("Details").First(&receipt, id).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

// FindAll lists receipts with their line items
func (r *GormGoodsReceiptRepository) FindAll(limit, offset int, order string) ([]domain.GoodsReceipt, error) {
	var receipts []domain.GoodsReceipt
	err := r.db.Preload("Details").
		Order(order).
		Limit(limit).Offset(offset).
		Find(&receipts).Error
	return receipts, err
}

// Count returns the total number of receipts
func (r *GormGoodsReceiptRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.GoodsReceipt{}).Count(&count).Error
	return count, err
}

// Delete removes a receipt and reverts its stock effect in one transaction
func (r *GormGoodsReceiptRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var receipt domain.GoodsReceipt
		if err := tx.Preload("Details").First(&receipt, id).Error; err != nil {
			return err
		}

		if err := invrepo.ApplyDecrease(tx, receipt.WarehouseID, stockLines(receipt.Details), r.allowBackorder); err != nil {
			return err
		}

		if err := tx.Where("goods_receipt_id = ?", receipt.ID).
			Delete(&domain.GoodsReceiptDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete receipt details: %w", err)
		}

		if err := tx.Delete(&receipt).Error; err != nil {
			return fmt.Errorf("failed to delete goods receipt: %w", err)
		}

		return nil
	})
}
