package domain

import (
	"time"

	"gorm.io/gorm"
)

// Payment types
const (
	TypeCash   = "CASH"
	TypeCredit = "CREDIT"
)

// Payment statuses
const (
	StatusUnpaid  = "UNPAID"
	StatusPaid    = "PAID"
	StatusPartial = "PARTIAL"
	StatusCancel  = "CANCEL"
	StatusRefund  = "REFUND"
)

// ValidType reports whether t is a known payment type
func ValidType(t string) bool {
	return t == TypeCash || t == TypeCredit
}

// Payment represents the payment entity. Exactly one payment row is
// created per order, inside the order transaction.
type Payment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"orderId" gorm:"not null;index"`
	Amount    int64          `json:"amount" gorm:"not null"` // smallest currency unit
	Type      string         `json:"type" gorm:"not null;default:'CASH'"`
	Status    string         `json:"status" gorm:"not null;default:'UNPAID'"`
	Note      string         `json:"note"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Payment) TableName() string {
	return "payments"
}

// PaymentRepository defines the contract for payment data access
type PaymentRepository interface {
	FindByID(id uint) (*Payment, error)
	FindByOrderID(orderID uint) (*Payment, error)
	FindAll(limit, offset int, order string) ([]Payment, error)
	Count() (int64, error)
	UpdateStatus(id uint, status string) error
}
