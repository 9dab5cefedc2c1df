package query

import (
	"context"
	"fmt"

	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// ListByWarehouseQuery lists stock rows for one warehouse
type ListByWarehouseQuery struct {
	WarehouseID uint
	Limit       int
	Offset      int
	Order       string
}

// ListByWarehouseHandler handles warehouse stock listing
type ListByWarehouseHandler struct {
	repo domain.InventoryRepository
}

// NewListByWarehouseHandler creates a new list by warehouse handler
func NewListByWarehouseHandler(repo domain.InventoryRepository) *ListByWarehouseHandler {
	return &ListByWarehouseHandler{repo: repo}
}

// tracedLister is satisfied by the tracing repository decorator
type tracedLister interface {
	FindByWarehouseWithContext(ctx context.Context, warehouseID uint, limit, offset int, order string) ([]domain.InventoryWithProduct, error)
}

// Handle executes the query, returning the page and the total count
func (h *ListByWarehouseHandler) Handle(ctx context.Context, q ListByWarehouseQuery) ([]domain.InventoryWithProduct, int64, error) {
	if q.WarehouseID == 0 {
		return nil, 0, apperrors.InvalidContent("warehouse id is required")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	var rows []domain.InventoryWithProduct
	var err error
	if traced, ok := h.repo.(tracedLister); ok {
		rows, err = traced.FindByWarehouseWithContext(ctx, q.WarehouseID, q.Limit, q.Offset, q.Order)
	} else {
		rows, err = h.repo.FindByWarehouse(q.WarehouseID, q.Limit, q.Offset, q.Order)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list warehouse stock: %w", err)
	}

	total, err := h.repo.CountByWarehouse(q.WarehouseID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count warehouse stock: %w", err)
	}

	return rows, total, nil
}
