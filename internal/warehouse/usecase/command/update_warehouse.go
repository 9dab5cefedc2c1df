package command

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/warehouse/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// UpdateWarehouseCommand represents the command to update a warehouse
type UpdateWarehouseCommand struct {
	ID   uint
	Name string
}

// UpdateWarehouseHandler handles warehouse updates
type UpdateWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewUpdateWarehouseHandler creates a new update warehouse handler
func NewUpdateWarehouseHandler(repo domain.WarehouseRepository) *UpdateWarehouseHandler {
	return &UpdateWarehouseHandler{repo: repo}
}

// Handle executes the update warehouse command
func (h *UpdateWarehouseHandler) Handle(cmd UpdateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, apperrors.InvalidContent("warehouse name is required")
	}

	warehouse, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	warehouse.Name = cmd.Name
	if err := h.repo.Update(warehouse); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}
	return warehouse, nil
}
