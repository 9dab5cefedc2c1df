package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/inventory/domain"
)

// Stats holds inventory dashboard counters
type Stats struct {
	Total int64 `json:"total"`
}

// GetStatsHandler handles inventory stats queries
type GetStatsHandler struct {
	repo domain.InventoryRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.InventoryRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle returns the total number of inventory rows
func (h *GetStatsHandler) Handle() (*Stats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}
	return &Stats{Total: total}, nil
}
