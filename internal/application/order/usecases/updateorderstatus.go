package usecases

import (
	"context"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	vo "dishpatch/internal/domain/order/valueobjects"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
)

type UpdateOrderStatusCommand struct {
	OrderID   uint
	AccountID uint
	Status    string
}

type UpdateOrderStatusResult struct {
	OrderID   uint
	OldStatus string
	NewStatus string
}

// UpdateOrderStatusUseCase is the owner-facing path through the order state
// machine: accepting (PREPARING), cancelling, handing to delivery
// (SHIPPING), and completing, all validated by the shared transition table.
type UpdateOrderStatusUseCase struct {
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewUpdateOrderStatusUseCase(
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*UpdateOrderStatusResult, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	actor, err := uc.accountRepo.FindByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	role := account.NormalizeRole(actor.Role().String())
	if !role.IsOwner() && !role.IsAdmin() {
		return nil, errors.NewForbiddenError("only restaurant owners can update order status")
	}

	newStatus, err := vo.NewOrderStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if newStatus.IsRefunded() {
		return nil, errors.NewValidationError("REFUNDED is only reachable through an approved refund")
	}

	var result *UpdateOrderStatusResult
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		ord, err := uc.orderRepo.FindByID(txCtx, cmd.OrderID)
		if err != nil {
			return err
		}
		if role.IsOwner() && ord.RestaurantOwnerID() != actor.ID() {
			return errors.NewForbiddenError("you do not own the restaurant on this order")
		}

		oldStatus := ord.Status()
		wasShipping := oldStatus.IsShipping()
		if err := ord.ChangeStatus(newStatus); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.orderRepo.Update(txCtx, ord); err != nil {
			return err
		}

		// Completing or cancelling a shipping order frees its courier.
		if wasShipping && (newStatus.IsCompleted() || newStatus.IsCancelled()) && ord.ShipperID() != nil {
			if err := uc.releaseCourier(txCtx, *ord.ShipperID()); err != nil {
				return err
			}
		}

		result = &UpdateOrderStatusResult{
			OrderID:   ord.ID(),
			OldStatus: oldStatus.String(),
			NewStatus: ord.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("order status updated",
		"order_id", result.OrderID, "old_status", result.OldStatus, "new_status", result.NewStatus)

	return result, nil
}

func (uc *UpdateOrderStatusUseCase) releaseCourier(ctx context.Context, courierID uint) error {
	courier, err := uc.accountRepo.FindByID(ctx, courierID)
	if err != nil {
		return err
	}
	if err := courier.SetCourierStatus(account.CourierOnline); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return uc.accountRepo.Update(ctx, courier)
}
