package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/payment/domain"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID retrieves a payment by id
func (r *GormPaymentRepository) FindByID(id uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// FindByOrderID retrieves the payment for an order
func (r *GormPaymentRepository) FindByOrderID(orderID uint) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// FindAll lists payments sorted
func (r *GormPaymentRepository) FindAll(limit, offset int, order string) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.Order(order).
		Limit(limit).Offset(offset).
		Find(&payments).Error
	return payments, err
}

// Count returns the total number of payments
func (r *GormPaymentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Payment{}).Count(&count).Error
	return count, err
}

// UpdateStatus sets the status of a payment
func (r *GormPaymentRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&domain.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
