package models

import "fmt"

// OrderStatus is the closed set of order states. The canonical form is
// lowercase everywhere; display casing is a UI concern.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusShipped:   {},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ToOrderStatus validates a raw status string. Any status may replace any
// other; there is no transition graph.
func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// OrderStatuses lists every valid status, for admin UI dropdowns.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}
}
