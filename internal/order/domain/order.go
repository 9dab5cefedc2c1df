package domain

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses, derived from paid/due at creation time
const (
	StatusUnpaid      = "UNPAID"
	StatusPartialPaid = "PARTIAL_PAID"
	StatusPaid        = "PAID"
)

// DeriveStatus computes the order status from the paid and due amounts
func DeriveStatus(paid, due int64) string {
	switch {
	case due == 0 && paid > 0:
		return StatusPaid
	case due > 0 && paid > 0:
		return StatusPartialPaid
	default:
		return StatusUnpaid
	}
}

// Order represents a sale. Orders are immutable after creation; the only
// post-creation mutation is deletion, which compensates stock and payment.
type Order struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Total       int64          `json:"total" gorm:"not null"`
	Paid        int64          `json:"paid" gorm:"not null;default:0"`
	Due         int64          `json:"due" gorm:"not null;default:0"`
	Discount    int64          `json:"discount" gorm:"not null;default:0"`
	Note        string         `json:"note"`
	Status      string         `json:"status" gorm:"not null;default:'UNPAID'"`
	WarehouseID uint           `json:"warehouseId" gorm:"not null;index"`
	CustomerID  *uint          `json:"customerId" gorm:"index"`
	Details     []OrderDetail  `json:"details" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderDetail is one line item of an order. Lifecycle-bound to its order:
// created with it, never independently.
type OrderDetail struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"orderId" gorm:"not null;index"`
	ProductID uint      `json:"productId" gorm:"not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Discount  int64     `json:"discount" gorm:"not null;default:0"`
	Price     int64     `json:"price" gorm:"not null"` // unit price snapshot at sale time
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (OrderDetail) TableName() string {
	return "order_details"
}

// OrderRepository defines the contract for order persistence. Create and
// Delete span order, payment and inventory rows in one transaction.
type OrderRepository interface {
	Create(order *Order, paymentType, paymentNote string) error
	FindByID(id uint) (*Order, error)
	FindAll(limit, offset int, order string) ([]Order, error)
	Count() (int64, error)
	Delete(id uint) error
}
