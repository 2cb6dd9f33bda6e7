package domain

import "time"

const (
	EventOrderCreated = "order.created"
	EventOrderDeleted = "order.deleted"
)

type OrderEvent struct {
	OrderID    uint64    `json:"orderId"`
	CustomerID uint64    `json:"customerId"`
	Status     string    `json:"status"`
	LineCount  int       `json:"lineCount"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewOrderEvent snapshots an order for publishing.
func NewOrderEvent(o *Order) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		LineCount:  len(o.Lines),
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt,
	}
}
