package command

import (
	"github.com/bizstack/backoffice/internal/receipt/domain"
)

// DeleteReceiptCommand represents the command to delete a goods receipt
type DeleteReceiptCommand struct {
	ID uint
}

// DeleteReceiptHandler handles goods-receipt deletion
type DeleteReceiptHandler struct {
	receipts domain.GoodsReceiptRepository
}

// NewDeleteReceiptHandler creates a new delete receipt handler
func NewDeleteReceiptHandler(receipts domain.GoodsReceiptRepository) *DeleteReceiptHandler {
	return &DeleteReceiptHandler{receipts: receipts}
}

// Handle deletes the receipt; its stock effect is reverted inside the
// repository transaction.
func (h *DeleteReceiptHandler) Handle(cmd DeleteReceiptCommand) error {
	return h.receipts.Delete(cmd.ID)
}
