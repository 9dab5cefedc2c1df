package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/order/domain"
)

// GetOrderQuery retrieves a single order with its line items
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order queries
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(q GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(q.ID)
}

// ListOrdersQuery lists orders with pagination
type ListOrdersQuery struct {
	Limit  int
	Offset int
	Order  string
}

// ListOrdersHandler handles list order queries
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the query, returning the page and the total count
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) ([]domain.Order, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	orders, err := h.repo.FindAll(q.Limit, q.Offset, q.Order)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	total, err := h.repo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return orders, total, nil
}
