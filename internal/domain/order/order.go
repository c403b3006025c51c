package order

import (
	"fmt"
	"time"

	vo "dishpatch/internal/domain/order/valueobjects"
)

// DefaultEstimatedDeliveryMinutes applies when an order carries no estimate.
const DefaultEstimatedDeliveryMinutes = 2

type Order struct {
	id                       uint
	customerID               uint
	restaurantID             uint
	restaurantOwnerID        uint
	shipperID                *uint
	status                   vo.OrderStatus
	estimatedDeliveryMinutes *int
	restaurantAcceptedAt     *time.Time
	shippedAt                *time.Time
	deliveryStartedAt        *time.Time
	completedAt              *time.Time
	createdAt                time.Time
	updatedAt                time.Time
}

func NewOrder(customerID, restaurantID, restaurantOwnerID uint) (*Order, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if restaurantOwnerID == 0 {
		return nil, fmt.Errorf("restaurant owner ID is required")
	}

	now := time.Now().UTC()
	return &Order{
		customerID:        customerID,
		restaurantID:      restaurantID,
		restaurantOwnerID: restaurantOwnerID,
		status:            vo.StatusCart,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructOrder(
	id uint,
	customerID uint,
	restaurantID uint,
	restaurantOwnerID uint,
	shipperID *uint,
	status vo.OrderStatus,
	estimatedDeliveryMinutes *int,
	restaurantAcceptedAt *time.Time,
	shippedAt *time.Time,
	deliveryStartedAt *time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:                       id,
		customerID:               customerID,
		restaurantID:             restaurantID,
		restaurantOwnerID:        restaurantOwnerID,
		shipperID:                shipperID,
		status:                   status,
		estimatedDeliveryMinutes: estimatedDeliveryMinutes,
		restaurantAcceptedAt:     restaurantAcceptedAt,
		shippedAt:                shippedAt,
		deliveryStartedAt:        deliveryStartedAt,
		completedAt:              completedAt,
		createdAt:                createdAt,
		updatedAt:                updatedAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) CustomerID() uint {
	return o.customerID
}

func (o *Order) RestaurantID() uint {
	return o.restaurantID
}

func (o *Order) RestaurantOwnerID() uint {
	return o.restaurantOwnerID
}

func (o *Order) ShipperID() *uint {
	return o.shipperID
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) EstimatedDeliveryMinutes() *int {
	return o.estimatedDeliveryMinutes
}

func (o *Order) RestaurantAcceptedAt() *time.Time {
	return o.restaurantAcceptedAt
}

func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

func (o *Order) DeliveryStartedAt() *time.Time {
	return o.deliveryStartedAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Order) SetEstimatedDeliveryMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("estimated delivery minutes must be positive")
	}
	o.estimatedDeliveryMinutes = &minutes
	o.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus applies a validated status transition and stamps the
// lifecycle timestamps tied to the entered state.
func (o *Order) ChangeStatus(newStatus vo.OrderStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid order status: %s", newStatus)
	}
	if o.status == newStatus {
		return nil
	}
	if !o.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition order from %s to %s", o.status, newStatus)
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.updatedAt = now

	switch {
	case newStatus.IsPreparing():
		o.restaurantAcceptedAt = &now
	case newStatus.IsShipping():
		if o.shippedAt == nil {
			o.shippedAt = &now
		}
	case newStatus.IsCompleted() || newStatus.IsCancelled():
		o.completedAt = &now
	}

	return nil
}

// AcceptBy assigns a courier and moves the order into SHIPPING. The order
// must be PREPARING (or still PAID on the legacy path) and unassigned.
func (o *Order) AcceptBy(courierID uint) error {
	if courierID == 0 {
		return fmt.Errorf("courier ID is required")
	}
	if o.shipperID != nil {
		return fmt.Errorf("order %d already has an assigned courier", o.id)
	}
	if !o.status.IsPreparing() && !o.status.IsPaid() {
		return fmt.Errorf("order %d cannot be accepted while %s", o.id, o.status)
	}

	now := time.Now().UTC()
	o.shipperID = &courierID
	o.status = vo.StatusShipping
	o.shippedAt = &now
	o.updatedAt = now
	return nil
}

// StartDelivery records the courier-initiated delivery-start sub-step.
func (o *Order) StartDelivery(courierID uint) error {
	if !o.status.IsShipping() {
		return fmt.Errorf("order %d is not shipping", o.id)
	}
	if o.shipperID == nil || *o.shipperID != courierID {
		return fmt.Errorf("order %d is not assigned to courier %d", o.id, courierID)
	}
	if o.deliveryStartedAt != nil {
		return nil
	}

	now := time.Now().UTC()
	o.deliveryStartedAt = &now
	o.updatedAt = now
	return nil
}

// CompleteDelivery finishes a shipping order on the courier path. Delivery
// must have been started before it can be completed.
func (o *Order) CompleteDelivery(courierID uint) error {
	if !o.status.IsShipping() {
		return fmt.Errorf("order %d is not shipping", o.id)
	}
	if o.shipperID == nil || *o.shipperID != courierID {
		return fmt.Errorf("order %d is not assigned to courier %d", o.id, courierID)
	}
	if o.deliveryStartedAt == nil {
		return fmt.Errorf("order %d delivery has not started", o.id)
	}

	return o.ChangeStatus(vo.StatusCompleted)
}

// MarkRefunded moves a completed order to the terminal REFUNDED state.
// Only an approved owner refund reaches this.
func (o *Order) MarkRefunded() error {
	if o.status.IsRefunded() {
		return nil
	}
	if !o.status.IsCompleted() {
		return fmt.Errorf("cannot refund order %d while %s", o.id, o.status)
	}

	o.status = vo.StatusRefunded
	o.updatedAt = time.Now().UTC()
	return nil
}

// IsOverdue derives lateness from shippedAt plus the delivery estimate.
// A shipping order is overdue once the estimate has elapsed; a completed
// order is overdue when completion happened after the estimate.
func (o *Order) IsOverdue(now time.Time) bool {
	if o.shippedAt == nil {
		return false
	}

	minutes := DefaultEstimatedDeliveryMinutes
	if o.estimatedDeliveryMinutes != nil {
		minutes = *o.estimatedDeliveryMinutes
	}
	deadline := o.shippedAt.Add(time.Duration(minutes) * time.Minute)

	switch {
	case o.status.IsShipping():
		return now.After(deadline)
	case o.status.IsCompleted() && o.completedAt != nil:
		return o.completedAt.After(deadline)
	default:
		return false
	}
}
