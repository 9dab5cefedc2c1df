package command

import (
	"github.com/bizstack/backoffice/internal/inventory/domain"
	"github.com/bizstack/backoffice/pkg/apperrors"
)

// UpdateConfigsCommand bulk-updates stock thresholds by inventory id
type UpdateConfigsCommand struct {
	Configs []domain.ThresholdConfig
}

// UpdateConfigsHandler handles threshold update commands
type UpdateConfigsHandler struct {
	repo domain.InventoryRepository
}

// NewUpdateConfigsHandler creates a new update configs handler
func NewUpdateConfigsHandler(repo domain.InventoryRepository) *UpdateConfigsHandler {
	return &UpdateConfigsHandler{repo: repo}
}

// Handle executes the update configs command
func (h *UpdateConfigsHandler) Handle(cmd UpdateConfigsCommand) error {
	if len(cmd.Configs) == 0 {
		return apperrors.InvalidContent("at least one config entry is required")
	}
	for _, cfg := range cmd.Configs {
		if cfg.ID == 0 {
			return apperrors.InvalidContent("inventory id is required")
		}
		if cfg.MinimumStockLevel < 0 || cfg.MaximumStockLevel < 0 || cfg.ReorderPoint < 0 {
			return apperrors.InvalidContent("thresholds cannot be negative")
		}
		if cfg.MaximumStockLevel > 0 && cfg.MinimumStockLevel > cfg.MaximumStockLevel {
			return apperrors.InvalidContent("minimum stock level cannot exceed maximum")
		}
	}

	return h.repo.UpdateConfigs(cmd.Configs)
}
