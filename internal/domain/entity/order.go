package entity

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// IsValid checks if the status is one the dashboard may set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	default:
		return false
	}
}

// Order is a customer's purchase from one store.
type Order struct {
	ID              string      `json:"_id"`
	OrderNumber     string      `json:"orderNumber,omitempty"`
	StoreID         Ref         `json:"store,omitempty"`
	CustomerID      Ref         `json:"customer,omitempty"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
	ShippingAddress any         `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitzero"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID Ref     `json:"product"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
