package domain

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents the customer entity
type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Phone       string         `json:"phone" gorm:"index"`
	Address     string         `json:"address"`
	Email       string         `json:"email" gorm:"index"`
	DateOfBirth *time.Time     `json:"dateOfBirth"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access
type CustomerRepository interface {
	Create(customer *Customer) error
	FindByID(id uint) (*Customer, error)
	FindAll(limit, offset int, order, search string) ([]Customer, error)
	CountFiltered(search string) (int64, error)
	Update(customer *Customer) error
	Delete(id uint) error
}
