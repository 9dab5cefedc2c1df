package query

import (
	"context"

	"github.com/bizstack/backoffice/internal/product/domain"
)

// GetProductQuery retrieves a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product queries
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// tracedFinder is satisfied by the tracing repository decorator
type tracedFinder interface {
	FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error)
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if traced, ok := h.repo.(tracedFinder); ok {
		return traced.FindByIDWithContext(ctx, q.ID)
	}
	return h.repo.FindByID(q.ID)
}
