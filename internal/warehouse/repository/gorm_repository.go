package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/warehouse/domain"
)

// GormWarehouseRepository implements WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GORM warehouse repository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Create inserts a new warehouse
func (r *GormWarehouseRepository) Create(warehouse *domain.Warehouse) error {
	if err := r.db.Create(warehouse).Error; err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}
	return nil
}

// FindByID retrieves a warehouse by id
func (r *GormWarehouseRepository) FindByID(id uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := r.db.First(&warehouse, id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *GormWarehouseRepository) filtered(search string) *gorm.DB {
	q := r.db.Model(&domain.Warehouse{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	return q
}

// FindAll lists warehouses sorted and filtered
func (r *GormWarehouseRepository) FindAll(limit, offset int, order, search string) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	err := r.filtered(search).
		Order(order).
		Limit(limit).Offset(offset).
		Find(&warehouses).Error
	return warehouses, err
}

// CountFiltered counts warehouses matching the filter
func (r *GormWarehouseRepository) CountFiltered(search string) (int64, error) {
	var count int64
	err := r.filtered(search).Count(&count).Error
	return count, err
}

// Update saves warehouse field changes
func (r *GormWarehouseRepository) Update(warehouse *domain.Warehouse) error {
	if err := r.db.Save(warehouse).Error; err != nil {
		return fmt.Errorf("failed to update warehouse: %w", err)
	}
	return nil
}

// Delete soft-deletes a warehouse
func (r *GormWarehouseRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Warehouse{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete warehouse: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
