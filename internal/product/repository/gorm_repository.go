package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/product/domain"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a new product
func (r *GormProductRepository) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by id
func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs retrieves products for a set of ids
func (r *GormProductRepository) FindByIDs(ids []uint) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}

// filtered applies the case-insensitive substring filter over name and
// barcode with OR semantics; list and count share this predicate.
func (r *GormProductRepository) filtered(search string) *gorm.DB {
	q := r.db.Model(&domain.Product{})
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(barcode) LIKE ?", term, term)
	}
	return q
}

// FindAll lists products sorted and filtered
func (r *GormProductRepository) FindAll(limit, offset int, order, search string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.filtered(search).
		Order(order).
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, err
}

// CountFiltered counts products matching the filter
func (r *GormProductRepository) CountFiltered(search string) (int64, error) {
	var count int64
	err := r.filtered(search).Count(&count).Error
	return count, err
}

// Update saves product field changes
func (r *GormProductRepository) Update(product *domain.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete soft-deletes a product
func (r *GormProductRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of products
func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}
