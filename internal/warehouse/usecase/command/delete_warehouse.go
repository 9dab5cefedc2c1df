package command

import (
	"github.com/bizstack/backoffice/internal/warehouse/domain"
)

// DeleteWarehouseCommand represents the command to delete a warehouse
type DeleteWarehouseCommand struct {
	ID uint
}

// DeleteWarehouseHandler handles warehouse deletion
type DeleteWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewDeleteWarehouseHandler creates a new delete warehouse handler
func NewDeleteWarehouseHandler(repo domain.WarehouseRepository) *DeleteWarehouseHandler {
	return &DeleteWarehouseHandler{repo: repo}
}

// Handle executes the delete warehouse command
func (h *DeleteWarehouseHandler) Handle(cmd DeleteWarehouseCommand) error {
	return h.repo.Delete(cmd.ID)
}
