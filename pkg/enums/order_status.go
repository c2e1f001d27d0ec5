package enums

import "fmt"

// OrderStatus describes the allowed workflow states for a restock order.
type OrderStatus string

const (
	OrderStatusPendingReview OrderStatus = "PENDING_REVIEW"
	OrderStatusApproved      OrderStatus = "APPROVED"
	OrderStatusRejected      OrderStatus = "REJECTED"
	OrderStatusOrdered       OrderStatus = "ORDERED"
	OrderStatusReceived      OrderStatus = "RECEIVED"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPendingReview,
	OrderStatusApproved,
	OrderStatusRejected,
	OrderStatusOrdered,
	OrderStatusReceived,
}

// IsValid reports whether the value matches the canonical order status enum.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further workflow transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusRejected || s == OrderStatusReceived
}

// ParseOrderStatus converts the raw string to OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
