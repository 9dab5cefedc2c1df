package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/customer/domain"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// FindByID retrieves a customer by id
func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// filtered matches name, phone or email with OR semantics
func (r *GormCustomerRepository) filtered(search string) *gorm.DB {
	q := r.db.Model(&domain.Customer{})
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?", term, term, term)
	}
	return q
}

// FindAll lists customers sorted and filtered
func (r *GormCustomerRepository) FindAll(limit, offset int, order, search string) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.filtered(search).
		Order(order).
		Limit(limit).Offset(offset).
		Find(&customers).Error
	return customers, err
}

// CountFiltered counts customers matching the filter
func (r *GormCustomerRepository) CountFiltered(search string) (int64, error) {
	var count int64
	err := r.filtered(search).Count(&count).Error
	return count, err
}

// Update saves customer field changes
func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// Delete soft-deletes a customer
func (r *GormCustomerRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Customer{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
