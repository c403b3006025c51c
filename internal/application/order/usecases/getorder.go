package usecases

import (
	"context"
	"time"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
)

type GetOrderQuery struct {
	OrderID   uint
	AccountID uint
}

type OrderDTO struct {
	ID                       uint       `json:"id"`
	CustomerID               uint       `json:"customer_id"`
	RestaurantID             uint       `json:"restaurant_id"`
	RestaurantOwnerID        uint       `json:"restaurant_owner_id"`
	ShipperID                *uint      `json:"shipper_id,omitempty"`
	Status                   string     `json:"status"`
	EstimatedDeliveryMinutes *int       `json:"estimated_delivery_minutes,omitempty"`
	RestaurantAcceptedAt     *time.Time `json:"restaurant_accepted_at,omitempty"`
	ShippedAt                *time.Time `json:"shipped_at,omitempty"`
	DeliveryStartedAt        *time.Time `json:"delivery_started_at,omitempty"`
	CompletedAt              *time.Time `json:"completed_at,omitempty"`
	Overdue                  bool       `json:"overdue"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

type GetOrderUseCase struct {
	orderRepo   order.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetOrderUseCase(
	orderRepo order.Repository,
	accountRepo account.Repository,
	log logger.Interface,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		logger:      log,
	}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, query GetOrderQuery) (*OrderDTO, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	actor, err := uc.accountRepo.FindByID(ctx, query.AccountID)
	if err != nil {
		return nil, err
	}

	ord, err := uc.orderRepo.FindByID(ctx, query.OrderID)
	if err != nil {
		return nil, err
	}

	role := account.NormalizeRole(actor.Role().String())
	if !uc.canView(actor.ID(), role, ord) {
		return nil, errors.NewForbiddenError("access to this order is not allowed")
	}

	return &OrderDTO{
		ID:                       ord.ID(),
		CustomerID:               ord.CustomerID(),
		RestaurantID:             ord.RestaurantID(),
		RestaurantOwnerID:        ord.RestaurantOwnerID(),
		ShipperID:                ord.ShipperID(),
		Status:                   ord.Status().String(),
		EstimatedDeliveryMinutes: ord.EstimatedDeliveryMinutes(),
		RestaurantAcceptedAt:     ord.RestaurantAcceptedAt(),
		ShippedAt:                ord.ShippedAt(),
		DeliveryStartedAt:        ord.DeliveryStartedAt(),
		CompletedAt:              ord.CompletedAt(),
		Overdue:                  ord.IsOverdue(time.Now().UTC()),
		CreatedAt:                ord.CreatedAt(),
		UpdatedAt:                ord.UpdatedAt(),
	}, nil
}

func (uc *GetOrderUseCase) canView(actorID uint, role account.Role, ord *order.Order) bool {
	switch {
	case role.IsAdmin():
		return true
	case role.IsCustomer():
		return ord.CustomerID() == actorID
	case role.IsOwner():
		return ord.RestaurantOwnerID() == actorID
	case role.IsShipper():
		return ord.ShipperID() != nil && *ord.ShipperID() == actorID
	}
	return false
}
