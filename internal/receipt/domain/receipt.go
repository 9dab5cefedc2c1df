package domain

import (
	"time"

	"gorm.io/gorm"
)

// GoodsReceipt records stock arriving at a warehouse
type GoodsReceipt struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	WarehouseID uint                 `json:"warehouseId" gorm:"not null;index"`
	Details     []GoodsReceiptDetail `json:"details" gorm:"foreignKey:GoodsReceiptID"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt       `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (GoodsReceipt) TableName() string {
	return "goods_receipts"
}

// GoodsReceiptDetail is one line item of a goods receipt. Lifecycle-bound
// to its receipt.
type GoodsReceiptDetail struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	GoodsReceiptID uint      `json:"goodsReceiptId" gorm:"not null;index"`
	ProductID      uint      `json:"productId" gorm:"not null;index"`
	Quantity       int       `json:"quantity" gorm:"not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (GoodsReceiptDetail) TableName() string {
	return "goods_receipt_details"
}

// GoodsReceiptRepository defines the contract for goods-receipt
// persistence. Create, Update and Delete keep inventory in step inside
// one transaction each.
type GoodsReceiptRepository interface {
	Create(receipt *GoodsReceipt) error
	Update(id uint, details []GoodsReceiptDetail) (*GoodsReceipt, error)
	FindByID(id uint) (*GoodsReceipt, error)
	FindAll(limit, offset int, order string) ([]GoodsReceipt, error)
	Count() (int64, error)
	Delete(id uint) error
}
