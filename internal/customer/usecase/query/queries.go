package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/customer/domain"
)

// GetCustomerQuery retrieves a single customer
type GetCustomerQuery struct {
	ID uint
}

// GetCustomerHandler handles get customer queries
type GetCustomerHandler struct {
	repo domain.CustomerRepository
}

// NewGetCustomerHandler creates a new get customer handler
func NewGetCustomerHandler(repo domain.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{repo: repo}
}

// Handle executes the get customer query
func (h *GetCustomerHandler) Handle(q GetCustomerQuery) (*domain.Customer, error) {
	return h.repo.FindByID(q.ID)
}

// ListCustomersQuery lists customers with pagination
type ListCustomersQuery struct {
	Limit  int
	Offset int
	Order  string
	Search string
}

// ListCustomersHandler handles list customer queries
type ListCustomersHandler struct {
	repo domain.CustomerRepository
}

// NewListCustomersHandler creates a new list customers handler
func NewListCustomersHandler(repo domain.CustomerRepository) *ListCustomersHandler {
	return &ListCustomersHandler{repo: repo}
}

// Handle executes the query, returning the page and the total count
func (h *ListCustomersHandler) Handle(q ListCustomersQuery) ([]domain.Customer, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	customers, err := h.repo.FindAll(q.Limit, q.Offset, q.Order, q.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	total, err := h.repo.CountFiltered(q.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return customers, total, nil
}
