package command

import (
	"fmt"
	"time"

	"github.com/bizstack/backoffice/internal/customer/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// CreateCustomerCommand represents the command to create a customer
type CreateCustomerCommand struct {
	Name        string
	Phone       string
	Address     string
	Email       string
	DateOfBirth *time.Time
}

// CreateCustomerHandler handles customer creation
type CreateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewCreateCustomerHandler creates a new create customer handler
func NewCreateCustomerHandler(repo domain.CustomerRepository) *CreateCustomerHandler {
	return &CreateCustomerHandler{repo: repo}
}

// Handle executes the create customer command
func (h *CreateCustomerHandler) Handle(cmd CreateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, apperrors.InvalidContent("customer name is required")
	}

	customer := &domain.Customer{
		Name:        cmd.Name,
		Phone:       cmd.Phone,
		Address:     cmd.Address,
		Email:       cmd.Email,
		DateOfBirth: cmd.DateOfBirth,
	}

	if err := h.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomerCommand represents the command to update a customer
type UpdateCustomerCommand struct {
	ID          uint
	Name        string
	Phone       string
	Address     string
	Email       string
	DateOfBirth *time.Time
}

// UpdateCustomerHandler handles customer updates
type UpdateCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateCustomerHandler creates a new update customer handler
func NewUpdateCustomerHandler(repo domain.CustomerRepository) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{repo: repo}
}

// Handle executes the update customer command
func (h *UpdateCustomerHandler) Handle(cmd UpdateCustomerCommand) (*domain.Customer, error) {
	if cmd.Name == "" {
		return nil, apperrors.InvalidContent("customer name is required")
	}

	customer, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	customer.Name = cmd.Name
	customer.Phone = cmd.Phone
	customer.Address = cmd.Address
	customer.Email = cmd.Email
	customer.DateOfBirth = cmd.DateOfBirth

	if err := h.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomerCommand represents the command to delete a customer
type DeleteCustomerCommand struct {
	ID uint
}

// DeleteCustomerHandler handles customer deletion
type DeleteCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewDeleteCustomerHandler creates a new delete customer handler
func NewDeleteCustomerHandler(repo domain.CustomerRepository) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{repo: repo}
}

// Handle executes the delete customer command
func (h *DeleteCustomerHandler) Handle(cmd DeleteCustomerCommand) error {
	return h.repo.Delete(cmd.ID)
}
