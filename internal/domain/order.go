package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus classifies an order. Any status may be assigned at any time;
// there are no transition rules.
type OrderStatus int

const (
	OrderProcessing OrderStatus = iota
	OrderShipped
	OrderDelivered
	OrderCancelled
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []OrderStatus{
	OrderProcessing,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// String returns the lowercase name used in flags, config and JSON.
func (s OrderStatus) String() string {
	switch s {
	case OrderProcessing:
		return "processing"
	case OrderShipped:
		return "shipped"
	case OrderDelivered:
		return "delivered"
	case OrderCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Label returns the display label.
func (s OrderStatus) Label() string {
	switch s {
	case OrderProcessing:
		return "Processing"
	case OrderShipped:
		return "Shipped"
	case OrderDelivered:
		return "Delivered"
	case OrderCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	return s >= OrderProcessing && s <= OrderCancelled
}

// ParseOrderStatus converts a case-insensitive name into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, status := range OrderStatuses {
		if status.String() == name {
			return status, true
		}
	}
	return 0, false
}

// MarshalText encodes the status by name.
func (s OrderStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name, case-insensitively.
func (s *OrderStatus) UnmarshalText(text []byte) error {
	status, ok := ParseOrderStatus(string(text))
	if !ok {
		return fmt.Errorf("unknown order status %q", string(text))
	}
	*s = status
	return nil
}

// OrderItem is a product snapshot captured at checkout.
type OrderItem struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Order is a checked-out cart.
type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Items     []OrderItem `json:"items,omitempty"`
}
