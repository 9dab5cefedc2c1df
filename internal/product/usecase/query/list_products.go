package query

import (
	"context"
	"fmt"

	"github.com/bizstack/backoffice/internal/product/domain"
)

// ListProductsQuery lists products with pagination, sorting and filtering
type ListProductsQuery struct {
	Limit  int
	Offset int
	Order  string
	Search string
}

// ListProductsHandler handles list products queries
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// tracedLister is satisfied by the tracing repository decorator
type tracedLister interface {
	FindAllWithContext(ctx context.Context, limit, offset int, order, search string) ([]domain.Product, error)
}

// Handle executes the query, returning the page and the total count
// computed with the same filter predicate
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	var products []domain.Product
	var err error
	if traced, ok := h.repo.(tracedLister); ok {
		products, err = traced.FindAllWithContext(ctx, q.Limit, q.Offset, q.Order, q.Search)
	} else {
		products, err = h.repo.FindAll(q.Limit, q.Offset, q.Order, q.Search)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	total, err := h.repo.CountFiltered(q.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, total, nil
}
