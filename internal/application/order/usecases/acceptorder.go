package usecases

import (
	"context"
	"time"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
)

type AcceptOrderCommand struct {
	OrderID   uint
	AccountID uint
}

type AcceptOrderResult struct {
	OrderID     uint
	OrderStatus string
	ShippedAt   *time.Time
}

// AcceptOrderUseCase lets an online courier claim an unassigned order.
// The no-courier guard is re-checked inside the transaction so two couriers
// racing on the same order cannot both win.
type AcceptOrderUseCase struct {
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewAcceptOrderUseCase(
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *AcceptOrderUseCase {
	return &AcceptOrderUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *AcceptOrderUseCase) Execute(ctx context.Context, cmd AcceptOrderCommand) (*AcceptOrderResult, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	var result *AcceptOrderResult
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		courier, err := uc.accountRepo.FindByID(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		role := account.NormalizeRole(courier.Role().String())
		if !role.IsShipper() {
			return errors.NewForbiddenError("only couriers can accept orders")
		}
		if !courier.IsAvailableForDelivery() {
			return errors.NewValidationError("courier is not online")
		}

		ord, err := uc.orderRepo.FindByID(txCtx, cmd.OrderID)
		if err != nil {
			return err
		}
		if err := ord.AcceptBy(courier.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := courier.SetCourierStatus(account.CourierBusy); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.orderRepo.Update(txCtx, ord); err != nil {
			return err
		}
		if err := uc.accountRepo.Update(txCtx, courier); err != nil {
			return err
		}

		result = &AcceptOrderResult{
			OrderID:     ord.ID(),
			OrderStatus: ord.Status().String(),
			ShippedAt:   ord.ShippedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("order accepted by courier", "order_id", result.OrderID, "courier_id", cmd.AccountID)

	return result, nil
}
