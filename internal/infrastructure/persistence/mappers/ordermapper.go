package mappers

import (
	"time"

	"dishpatch/internal/domain/order"
	vo "dishpatch/internal/domain/order/valueobjects"
	"dishpatch/internal/infrastructure/persistence/models"
)

// OrderMapper handles the conversion between order domain entities and persistence models.
type OrderMapper interface {
	ToModel(o *order.Order) *models.OrderModel
	ToDomain(model *models.OrderModel) (*order.Order, error)
}

// OrderMapperImpl is the concrete implementation of OrderMapper.
type OrderMapperImpl struct{}

// NewOrderMapper creates a new OrderMapper.
func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

// ToModel converts an order domain entity to a persistence model.
func (m *OrderMapperImpl) ToModel(o *order.Order) *models.OrderModel {
	model := &models.OrderModel{
		ID:                       o.ID(),
		CustomerID:               o.CustomerID(),
		RestaurantID:             o.RestaurantID(),
		RestaurantOwnerID:        o.RestaurantOwnerID(),
		ShipperID:                o.ShipperID(),
		Status:                   o.Status().String(),
		EstimatedDeliveryMinutes: o.EstimatedDeliveryMinutes(),
		CreatedAt:                o.CreatedAt().UnixMilli(),
		UpdatedAt:                o.UpdatedAt().UnixMilli(),
	}

	if o.RestaurantAcceptedAt() != nil {
		accepted := o.RestaurantAcceptedAt().UnixMilli()
		model.RestaurantAcceptedAt = &accepted
	}
	if o.ShippedAt() != nil {
		shipped := o.ShippedAt().UnixMilli()
		model.ShippedAt = &shipped
	}
	if o.DeliveryStartedAt() != nil {
		started := o.DeliveryStartedAt().UnixMilli()
		model.DeliveryStartedAt = &started
	}
	if o.CompletedAt() != nil {
		completed := o.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	return model
}

// ToDomain converts an order persistence model to a domain entity.
func (m *OrderMapperImpl) ToDomain(model *models.OrderModel) (*order.Order, error) {
	var acceptedAt, shippedAt, startedAt, completedAt *time.Time
	if model.RestaurantAcceptedAt != nil {
		t := convertMillisToTime(*model.RestaurantAcceptedAt)
		acceptedAt = &t
	}
	if model.ShippedAt != nil {
		t := convertMillisToTime(*model.ShippedAt)
		shippedAt = &t
	}
	if model.DeliveryStartedAt != nil {
		t := convertMillisToTime(*model.DeliveryStartedAt)
		startedAt = &t
	}
	if model.CompletedAt != nil {
		t := convertMillisToTime(*model.CompletedAt)
		completedAt = &t
	}

	return order.ReconstructOrder(
		model.ID,
		model.CustomerID,
		model.RestaurantID,
		model.RestaurantOwnerID,
		model.ShipperID,
		vo.OrderStatus(model.Status),
		model.EstimatedDeliveryMinutes,
		acceptedAt,
		shippedAt,
		startedAt,
		completedAt,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
