package query

import (
	"fmt"

	"github.com/bizstack/backoffice/internal/payment/domain"
)

// GetPaymentQuery retrieves a single payment
type GetPaymentQuery struct {
	ID uint
}

// GetPaymentHandler handles get payment queries
type GetPaymentHandler struct {
	repo domain.PaymentRepository
}

// NewGetPaymentHandler creates a new get payment handler
func NewGetPaymentHandler(repo domain.PaymentRepository) *GetPaymentHandler {
	return &GetPaymentHandler{repo: repo}
}

// Handle executes the get payment query
func (h *GetPaymentHandler) Handle(q GetPaymentQuery) (*domain.Payment, error) {
	return h.repo.FindByID(q.ID)
}

// ListPaymentsQuery lists payments with pagination
type ListPaymentsQuery struct {
	Limit  int
	Offset int
	Order  string
}

// ListPaymentsHandler handles list payment queries
type ListPaymentsHandler struct {
	repo domain.PaymentRepository
}

// NewListPaymentsHandler creates a new list payments handler
func NewListPaymentsHandler(repo domain.PaymentRepository) *ListPaymentsHandler {
	return &ListPaymentsHandler{repo: repo}
}

// Handle executes the query, returning the page and the total count
func (h *ListPaymentsHandler) Handle(q ListPaymentsQuery) ([]domain.Payment, int64, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Order == "" {
		q.Order = "created_at desc"
	}

	payments, err := h.repo.FindAll(q.Limit, q.Offset, q.Order)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	total, err := h.repo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return payments, total, nil
}
