package valueobjects

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusCart      OrderStatus = "CART"
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusPreparing OrderStatus = "PREPARING"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusRefunded  OrderStatus = "REFUNDED"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusCart:      true,
	StatusPending:   true,
	StatusPaid:      true,
	StatusPreparing: true,
	StatusShipping:  true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusRefunded:  true,
}

// orderStatusTransitions is the single transition table used by both the
// owner-facing status update and courier acceptance/completion. REFUNDED is
// reachable only from COMPLETED, via an approved owner refund.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusCart:    {StatusPending},
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid: {
		StatusPreparing,
		StatusCancelled,
	},
	StatusPreparing: {StatusShipping},
	StatusShipping: {
		StatusCompleted,
		StatusCancelled,
	},
	StatusCompleted: {StatusRefunded},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsPaid() bool {
	return s == StatusPaid
}

func (s OrderStatus) IsPreparing() bool {
	return s == StatusPreparing
}

func (s OrderStatus) IsShipping() bool {
	return s == StatusShipping
}

func (s OrderStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s OrderStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func (s OrderStatus) IsRefunded() bool {
	return s == StatusRefunded
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}
