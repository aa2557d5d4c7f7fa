package kafka

import "time"

// PurchaseEventItem is one order line carried by a purchase event
type PurchaseEventItem struct {
	InventoryID     uint  `json:"inventory_id"`
	OrderedQuantity int64 `json:"ordered_quantity"`
}

// PurchaseCompletedEvent represents a confirmed purchase
type PurchaseCompletedEvent struct {
	EventID    string              `json:"event_id"`
	EventType  string              `json:"event_type"`
	PurchaseID uint                `json:"purchase_id"`
	Reference  string              `json:"reference"`
	ClientID   uint                `json:"client_id"`
	Price      float64             `json:"price"`
	Items      []PurchaseEventItem `json:"items"`
	Timestamp  time.Time           `json:"timestamp"`
}

// PurchaseCancelledEvent represents a cancelled purchase whose stock was restored
type PurchaseCancelledEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	PurchaseID uint      `json:"purchase_id"`
	Reference  string    `json:"reference"`
	ClientID   uint      `json:"client_id"`
	Price      float64   `json:"price"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypePurchaseCompleted = "purchase.completed"
	EventTypePurchaseCancelled = "purchase.cancelled"
)

// Kafka topics
const (
	TopicPurchaseCompleted = "purchase-completed"
	TopicPurchaseCancelled = "purchase-cancelled"
)
