package kafka

import "time"

// Event types
const (
	EventTypeOrderPlaced   = "order.placed"
	EventTypeGoodsReceived = "goods_receipt.received"
)

// Kafka topics
const (
	TopicOrderPlaced   = "order-placed"
	TopicGoodsReceived = "goods-receipt-received"
)

// EventLine is one product/quantity pair inside a stock-affecting event
type EventLine struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// OrderPlacedEvent is published after an order transaction commits
type OrderPlacedEvent struct {
	EventID     string      `json:"eventId"`
	EventType   string      `json:"eventType"`
	OrderID     uint        `json:"orderId"`
	WarehouseID uint        `json:"warehouseId"`
	Total       int64       `json:"total"`
	Paid        int64       `json:"paid"`
	Status      string      `json:"status"`
	Lines       []EventLine `json:"lines"`
	Timestamp   time.Time   `json:"timestamp"`
}

// GoodsReceivedEvent is published after a goods-receipt transaction commits
type GoodsReceivedEvent struct {
	EventID     string      `json:"eventId"`
	EventType   string      `json:"eventType"`
	ReceiptID   uint        `json:"receiptId"`
	WarehouseID uint        `json:"warehouseId"`
	Lines       []EventLine `json:"lines"`
	Timestamp   time.Time   `json:"timestamp"`
}
