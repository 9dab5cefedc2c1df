package command

import (
	"github.com/bizstack/backoffice/internal/receipt/domain"
)

// UpdateReceiptCommand replaces the line set of an existing receipt
type UpdateReceiptCommand struct {
	ID    uint
	Lines []ReceiptLine
}

// UpdateReceiptHandler handles goods-receipt updates
type UpdateReceiptHandler struct {
	receipts domain.GoodsReceiptRepository
}

// NewUpdateReceiptHandler creates a new update receipt handler
func NewUpdateReceiptHandler(receipts domain.GoodsReceiptRepository) *UpdateReceiptHandler {
	return &UpdateReceiptHandler{receipts: receipts}
}

// Handle replaces the receipt's quantities; inventory is reconciled to the
// per-product delta inside the repository transaction.
func (h *UpdateReceiptHandler) Handle(cmd UpdateReceiptCommand) (*domain.GoodsReceipt, error) {
	if err := ValidateLines(cmd.Lines); err != nil {
		return nil, err
	}

	details := make([]domain.GoodsReceiptDetail, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		details = append(details, domain.GoodsReceiptDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return h.receipts.Update(cmd.ID, details)
}
