package command

import (
	"context"

	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// DecreaseStockCommand removes stock from a warehouse
type DecreaseStockCommand struct {
	WarehouseID uint
	Lines       []domain.StockLine
}

// DecreaseStockHandler handles stock decrease commands
type DecreaseStockHandler struct {
	repo domain.InventoryRepository
}

// NewDecreaseStockHandler creates a new decrease stock handler
func NewDecreaseStockHandler(repo domain.InventoryRepository) *DecreaseStockHandler {
	return &DecreaseStockHandler{repo: repo}
}

// tracedDecreaser is satisfied by the tracing repository decorator
type tracedDecreaser interface {
	DecreaseWithContext(ctx context.Context, warehouseID uint, lines []domain.StockLine) error
}

// Handle executes the decrease stock command
func (h *DecreaseStockHandler) Handle(ctx context.Context, cmd DecreaseStockCommand) error {
	if cmd.WarehouseID == 0 {
		return apperrors.InvalidContent("warehouse id is required")
	}
	if len(cmd.Lines) == 0 {
		return apperrors.InvalidContent("at least one line item is required")
	}
	for _, line := range cmd.Lines {
		if line.ProductID == 0 {
			return apperrors.InvalidContent("product id is required")
		}
		if line.Quantity <= 0 {
			return apperrors.InvalidContent("quantity must be a positive integer")
		}
	}

	if traced, ok := h.repo.(tracedDecreaser); ok {
		return traced.DecreaseWithContext(ctx, cmd.WarehouseID, cmd.Lines)
	}
	return h.repo.Decrease(cmd.WarehouseID, cmd.Lines)
}
