package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/receipt/domain"
	whdomain "github.com/bizstack/backoffice/internal/warehouse/domain"
	"github.com/bizstack/backoffice/kafka"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/logger"
	"github.com/bizstack/backoffice/pkg/metrics"
)

// ReceiptLine is one received line item
type ReceiptLine struct {
	ProductID uint
	Quantity  int
}

// CreateReceiptCommand represents the command to record a goods receipt
type CreateReceiptCommand struct {
	WarehouseID uint
	Lines       []ReceiptLine
}

// ReceiptEventPublisher publishes goods-receipt lifecycle events
type ReceiptEventPublisher interface {
	PublishGoodsReceived(ctx context.Context, event kafka.GoodsReceivedEvent) error
}

// CreateReceiptHandler handles goods-receipt creation
type CreateReceiptHandler struct {
	receipts   domain.GoodsReceiptRepository
	warehouses whdomain.WarehouseRepository
	publisher  ReceiptEventPublisher
}

// NewCreateReceiptHandler creates a new create receipt handler
func NewCreateReceiptHandler(
	receipts domain.GoodsReceiptRepository,
	warehouses whdomain.WarehouseRepository,
	publisher ReceiptEventPublisher,
) *CreateReceiptHandler {
	return &CreateReceiptHandler{
		receipts:   receipts,
		warehouses: warehouses,
		publisher:  publisher,
	}
}

// ValidateLines checks a receipt line set; shared by create and update
func ValidateLines(lines []ReceiptLine) error {
	if len(lines) == 0 {
		return apperrors.InvalidContent("at least one line item is required")
	}
	for _, line := range lines {
		if line.ProductID == 0 {
			return apperrors.InvalidContent("product id is required")
		}
		if line.Quantity <= 0 {
			return apperrors.InvalidContent("quantity must be a positive integer")
		}
	}
	return nil
}

// Handle validates the request and persists receipt, line items and stock
// increments as one unit.
func (h *CreateReceiptHandler) Handle(ctx context.Context, cmd CreateReceiptCommand) (*domain.GoodsReceipt, error) {
	if cmd.WarehouseID == 0 {
		return nil, apperrors.InvalidContent("warehouse id is required")
	}
	if err := ValidateLines(cmd.Lines); err != nil {
		return nil, err
	}

	if _, err := h.warehouses.FindByID(cmd.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotfoundData(fmt.Sprintf("warehouse %d not found", cmd.WarehouseID))
		}
		return nil, fmt.Errorf("failed to look up warehouse: %w", err)
	}

	details := make([]domain.GoodsReceiptDetail, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		details = append(details, domain.GoodsReceiptDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	receipt := &domain.GoodsReceipt{
		WarehouseID: cmd.WarehouseID,
		Details:     details,
	}

	if err := h.receipts.Create(receipt); err != nil {
		return nil, err
	}

	metrics.GoodsReceiptsCreated.Inc()
	h.publishReceived(ctx, receipt)

	return receipt, nil
}

// publishReceived emits the goods received event; failures are logged only
func (h *CreateReceiptHandler) publishReceived(ctx context.Context, receipt *domain.GoodsReceipt) {
	if h.publisher == nil {
		return
	}

	lines := make([]kafka.EventLine, 0, len(receipt.Details))
	for _, detail := range receipt.Details {
		lines = append(lines, kafka.EventLine{
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
		})
	}

	event := kafka.GoodsReceivedEvent{
		ReceiptID:   receipt.ID,
		WarehouseID: receipt.WarehouseID,
		Lines:       lines,
	}

	if err := h.publisher.PublishGoodsReceived(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Uint("receipt_id", receipt.ID).Msg("Failed to publish goods received event")
	}
}
