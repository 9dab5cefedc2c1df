package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/product/domain"
)

// Stats holds product dashboard counters
type Stats struct {
	Total int64 `json:"total"`
}

// GetStatsHandler handles product stats queries
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle returns the total number of products
func (h *GetStatsHandler) Handle() (*Stats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	return &Stats{Total: total}, nil
}
