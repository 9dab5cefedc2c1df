package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/warehouse/domain"
)

// GetWarehouseQuery retrieves a single warehouse
type GetWarehouseQuery struct {
	ID uint
}

// GetWarehouseHandler handles get warehouse queries
type GetWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewGetWarehouseHandler creates a new get warehouse handler
func NewGetWarehouseHandler(repo domain.WarehouseRepository) *GetWarehouseHandler {
	return &GetWarehouseHandler{repo: repo}
}

// Handle executes the get warehouse query
func (h *GetWarehouseHandler) Handle(q GetWarehouseQuery) (*domain.Warehouse, error) {
	return h.repo.FindByID(q.ID)
}

// ListWarehousesQuery lists warehouses with pagination
type ListWarehousesQuery struct {
	Limit  int
	Offset int
	Order  string
	Search string
}

// ListWarehousesHandler handles list warehouse queries
type ListWarehousesHandler struct {
	repo domain.WarehouseRepository
}

// NewListWarehousesHandler creates a new list warehouses handler
func NewListWarehousesHandler(repo domain.WarehouseRepository) *ListWarehousesHandler {
	return &ListWarehousesHandler{repo: repo}
}

// Handle executes the query, returning the page and the total count
func (h *ListWarehousesHandler) Handle(q ListWarehousesQuery) ([]domain.Warehouse, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	warehouses, err := h.repo.FindAll(q.Limit, q.Offset, q.Order, q.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list warehouses: %w", err)
	}

	total, err := h.repo.CountFiltered(q.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count warehouses: %w", err)
	}

	return warehouses, total, nil
}
