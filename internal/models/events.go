package models

// Order event types published to the notifications exchange
const (
	EventOrderCreated = "order_created"
	EventOrderDeleted = "order_deleted"
)

// OrderEventMessage is the message published when an order changes
type OrderEventMessage struct {
	Event      string `json:"event"`
	OrderID    int64  `json:"order_id"`
	CustomerID int64  `json:"customer_id,omitempty"`
	Flavour    string `json:"flavour,omitempty"`
	Size       string `json:"size,omitempty"`
	TableNo    int    `json:"table_no,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// NewOrderCreatedEvent builds the event for a freshly persisted order
func NewOrderCreatedEvent(o *Order) *OrderEventMessage {
	return &OrderEventMessage{
		Event:      EventOrderCreated,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Flavour:    string(o.Flavour),
		Size:       string(o.Size),
		TableNo:    o.TableNo,
		Timestamp:  o.Timestamp,
	}
}

// NewOrderDeletedEvent builds the event for a removed order
func NewOrderDeletedEvent(orderID, timestamp int64) *OrderEventMessage {
	return &OrderEventMessage{
		Event:     EventOrderDeleted,
		OrderID:   orderID,
		Timestamp: timestamp,
	}
}
