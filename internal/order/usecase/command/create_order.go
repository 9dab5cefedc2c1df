package command

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bizstack/backoffice/internal/order/domain"
	paydomain "github.com/bizstack/backoffice/internal/payment/domain"
	proddomain "github.com/bizstack/backoffice/internal/product/domain"
	whdomain "github.com/bizstack/backoffice/internal/warehouse/domain"
	"github.com/bizstack/backoffice/kafka"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/logger"
	"github.com/bizstack/backoffice/pkg/metrics"
)

// OrderLine is one requested line item
type OrderLine struct {
	ProductID uint
	Quantity  int
	Discount  int64
}

// CreateOrderCommand represents the command to place an order
type CreateOrderCommand struct {
	WarehouseID uint
	CustomerID  *uint
	Discount    int64
	Note        string
	Paid        int64
	Due         *int64 // derived from total-paid when nil
	Lines       []OrderLine
	PaymentType string
	PaymentNote string
}

// OrderEventPublisher publishes order lifecycle events
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CreateOrderHandler handles order placement
type CreateOrderHandler struct {
	orders     domain.OrderRepository
	products   proddomain.ProductRepository
	warehouses whdomain.WarehouseRepository
	publisher  OrderEventPublisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(
	orders domain.OrderRepository,
	products proddomain.ProductRepository,
	warehouses whdomain.WarehouseRepository,
	publisher OrderEventPublisher,
) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:     orders,
		products:   products,
		warehouses: warehouses,
		publisher:  publisher,
	}
}

// Handle validates the request, computes the total from current product
// prices, derives the status and persists order, payment and stock
// decrement as one unit.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.WarehouseID == 0 {
		return nil, apperrors.InvalidContent("warehouse id is required")
	}
	if len(cmd.Lines) == 0 {
		return nil, apperrors.InvalidContent("at least one line item is required")
	}
	if cmd.Paid < 0 || cmd.Discount < 0 {
		return nil, apperrors.InvalidContent("paid and discount cannot be negative")
	}
	if cmd.PaymentType == "" {
		cmd.PaymentType = paydomain.TypeCash
	}
	if !paydomain.ValidType(cmd.PaymentType) {
		return nil, apperrors.InvalidContent(fmt.Sprintf("unknown payment type %q", cmd.PaymentType))
	}

	if _, err := h.warehouses.FindByID(cmd.WarehouseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotfoundData(fmt.Sprintf("warehouse %d not found", cmd.WarehouseID))
		}
		return nil, fmt.Errorf("failed to look up warehouse: %w", err)
	}

	productIDs := make([]uint, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		if line.ProductID == 0 {
			return nil, apperrors.InvalidContent("product id is required")
		}
		if line.Quantity <= 0 {
			return nil, apperrors.InvalidContent("quantity must be a positive integer")
		}
		if line.Discount < 0 {
			return nil, apperrors.InvalidContent("line discount cannot be negative")
		}
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := h.products.FindByIDs(productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to look up products: %w", err)
	}
	priceByID := make(map[uint]int64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	var total int64
	details := make([]domain.OrderDetail, 0, len(cmd.Lines))
	for _, line := range cmd.Lines {
		price, ok := priceByID[line.ProductID]
		if !ok {
			return nil, apperrors.NotfoundData(fmt.Sprintf("product %d not found", line.ProductID))
		}

		lineTotal := price*int64(line.Quantity) - line.Discount
		if lineTotal < 0 {
			lineTotal = 0
		}
		total += lineTotal

		details = append(details, domain.OrderDetail{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Discount:  line.Discount,
			Price:     price,
		})
	}

	total -= cmd.Discount
	if total < 0 {
		total = 0
	}

	due := total - cmd.Paid
	if cmd.Due != nil {
		due = *cmd.Due
	}
	if due < 0 {
		due = 0
	}

	order := &domain.Order{
		Total:       total,
		Paid:        cmd.Paid,
		Due:         due,
		Discount:    cmd.Discount,
		Note:        cmd.Note,
		Status:      domain.DeriveStatus(cmd.Paid, due),
		WarehouseID: cmd.WarehouseID,
		CustomerID:  cmd.CustomerID,
		Details:     details,
	}

	if err := h.orders.Create(order, cmd.PaymentType, cmd.PaymentNote); err != nil {
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	h.publishPlaced(ctx, order)

	return order, nil
}

// publishPlaced emits the order.placed event; failures are logged, never
// surfaced to the caller.
func (h *CreateOrderHandler) publishPlaced(ctx context.Context, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	lines := make([]kafka.EventLine, 0, len(order.Details))
	for _, detail := range order.Details {
		lines = append(lines, kafka.EventLine{
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
		})
	}

	event := kafka.OrderPlacedEvent{
		OrderID:     order.ID,
		WarehouseID: order.WarehouseID,
		Total:       order.Total,
		Paid:        order.Paid,
		Status:      order.Status,
		Lines:       lines,
	}

	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
	}
}
