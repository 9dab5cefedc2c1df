package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/receipt/domain"
)

// GetReceiptQuery retrieves a single goods receipt with its line items
type GetReceiptQuery struct {
	ID uint
}

// GetReceiptHandler handles get receipt queries
type GetReceiptHandler struct {
	repo domain.GoodsReceiptRepository
}

// NewGetReceiptHandler creates a new get receipt handler
func NewGetReceiptHandler(repo domain.GoodsReceiptRepository) *GetReceiptHandler {
	return &GetReceiptHandler{repo: repo}
}

// Handle executes the get receipt query
func (h *GetReceiptHandler) Handle(q GetReceiptQuery) (*domain.GoodsReceipt, error) {
	return h.repo.FindByID(q.ID)
}

// ListReceiptsQuery lists goods receipts with pagination
type ListReceiptsQuery struct {
	Limit  int
	Offset int
	Order  string
}

// ListReceiptsHandler handles list receipt queries
type ListReceiptsHandler struct {
	repo domain.GoodsReceiptRepository
}

// NewListReceiptsHandler creates a new list receipts handler
func NewListReceiptsHandler(repo domain.GoodsReceiptRepository) *ListReceiptsHandler {
	return &ListReceiptsHandler{repo: repo}
}

// Handle executes the query, returning the page and the total count
func (h *ListReceiptsHandler) Handle(q ListReceiptsQuery) ([]domain.GoodsReceipt, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	receipts, err := h.repo.FindAll(q.Limit, q.Offset, q.Order)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goods receipts: %w", err)
	}

	total, err := h.repo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count goods receipts: %w", err)
	}

	return receipts, total, nil
}
