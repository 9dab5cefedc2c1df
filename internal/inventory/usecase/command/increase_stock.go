package command

import (
	"context"
	"fmt"

	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// IncreaseStockCommand adds stock to a warehouse
type IncreaseStockCommand struct {
	WarehouseID uint
	Lines       []domain.StockLine
}

// IncreaseStockHandler handles stock increase commands
type IncreaseStockHandler struct {
	repo domain.InventoryRepository
}

// NewIncreaseStockHandler creates a new increase stock handler
func NewIncreaseStockHandler(repo domain.InventoryRepository) *IncreaseStockHandler {
	return &IncreaseStockHandler{repo: repo}
}

// tracedIncreaser is satisfied by the tracing repository decorator
type tracedIncreaser interface {
	IncreaseWithContext(ctx context.Context, warehouseID uint, lines []domain.StockLine) error
}

// Handle executes the increase stock command
func (h *IncreaseStockHandler) Handle(ctx context.Context, cmd IncreaseStockCommand) error {
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

	var err error
	if traced, ok := h.repo.(tracedIncreaser); ok {
		err = traced.IncreaseWithContext(ctx, cmd.WarehouseID, cmd.Lines)
	} else {
		err = h.repo.Increase(cmd.WarehouseID, cmd.Lines)
	}
	if err != nil {
		return fmt.Errorf("failed to increase stock: %w", err)
	}
	return nil
}
