package command

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/warehouse/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// CreateWarehouseCommand represents the command to create a warehouse
type CreateWarehouseCommand struct {
	Name string
}

// CreateWarehouseHandler handles warehouse creation
type CreateWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewCreateWarehouseHandler creates a new create warehouse handler
func NewCreateWarehouseHandler(repo domain.WarehouseRepository) *CreateWarehouseHandler {
	return &CreateWarehouseHandler{repo: repo}
}

// Handle executes the create warehouse command
func (h *CreateWarehouseHandler) Handle(cmd CreateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, apperrors.InvalidContent("warehouse name is required")
	}

	warehouse := &domain.Warehouse{Name: cmd.Name}
	if err := h.repo.Create(warehouse); err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}
	return warehouse, nil
}
