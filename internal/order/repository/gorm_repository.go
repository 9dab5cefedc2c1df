package repository

import (
	"fmt"

	"gorm.io/gorm"

	invdomain "github.com/bizstack/backoffice/internal/inventory/domain"
	invrepo "github.com/bizstack/backoffice/internal/inventory/repository"
	"github.com/bizstack/backoffice/internal/order/domain"
	paydomain "github.com/bizstack/backoffice/internal/payment/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db             *gorm.DB
	allowBackorder bool
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB, allowBackorder bool) *GormOrderRepository {
	return &GormOrderRepository{db: db, allowBackorder: allowBackorder}
}

// paymentStatusFor maps an order status to the payment status recorded with it
func paymentStatusFor(orderStatus string) string {
	switch orderStatus {
	case domain.StatusPaid:
		return paydomain.StatusPaid
	case domain.StatusPartialPaid:
		return paydomain.StatusPartial
	default:
		return paydomain.StatusUnpaid
	}
}

// Create persists the order with its line items, records exactly one
// payment, and decrements stock for every line item. All writes share one
// transaction: a failure at any step (including an over-sell) rolls back
// everything.
func (r *GormOrderRepository) Create(order *domain.Order, paymentType, paymentNote string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		payment := paydomain.Payment{
			OrderID: order.ID,
			Amount:  order.Paid,
			Type:    paymentType,
			Status:  paymentStatusFor(order.Status),
			Note:    paymentNote,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		lines := make([]invdomain.StockLine, 0, len(order.Details))
		for _, detail := range order.Details {
			lines = append(lines, invdomain.StockLine{
				ProductID: detail.ProductID,
				Quantity:  detail.Quantity,
			})
		}

		return invrepo.ApplyDecrease(tx, order.WarehouseID, lines, r.allowBackorder)
	})
}

// FindByID retrieves an order with its line items
func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Preload("Details").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll lists orders with their line items
func (r *GormOrderRepository) FindAll(limit, offset int, order string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.Preload("Details").
		Order(order).
		Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, err
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Count(&count).Error
	return count, err
}

// Delete removes an order and compensates its side effects: stock is
// restored for every line item and the payment is marked CANCEL, all in
// one transaction.
func (r *GormOrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.Preload("Details").First(&order, id).Error; err != nil {
			return err
		}

		lines := make([]invdomain.StockLine, 0, len(order.Details))
		for _, detail := range order.Details {
			lines = append(lines, invdomain.StockLine{
				ProductID: detail.ProductID,
				Quantity:  detail.Quantity,
			})
		}
		if err := invrepo.ApplyIncrease(tx, order.WarehouseID, lines); err != nil {
			return fmt.Errorf("failed to restore stock: %w", err)
		}

		if err := tx.Model(&paydomain.Payment{}).
			Where("order_id = ?", order.ID).
			Update("status", paydomain.StatusCancel).Error; err != nil {
			return fmt.Errorf("failed to cancel payment: %w", err)
		}

		if err := tx.Where("order_id = ?", order.ID).
			Delete(&domain.OrderDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete order details: %w", err)
		}

		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}

		return nil
	})
}
