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

type StartDeliveryCommand struct {
	OrderID   uint
	AccountID uint
}

type StartDeliveryResult struct {
	OrderID           uint
	DeliveryStartedAt *time.Time
}

type StartDeliveryUseCase struct {
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewStartDeliveryUseCase(
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *StartDeliveryUseCase {
	return &StartDeliveryUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *StartDeliveryUseCase) Execute(ctx context.Context, cmd StartDeliveryCommand) (*StartDeliveryResult, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	courier, err := uc.accountRepo.FindByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.NormalizeRole(courier.Role().String()).IsShipper() {
		return nil, errors.NewForbiddenError("only couriers can start a delivery")
	}

	var result *StartDeliveryResult
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		ord, err := uc.orderRepo.FindByID(txCtx, cmd.OrderID)
		if err != nil {
			return err
		}
		if err := ord.StartDelivery(courier.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.orderRepo.Update(txCtx, ord); err != nil {
			return err
		}

		result = &StartDeliveryResult{
			OrderID:           ord.ID(),
			DeliveryStartedAt: ord.DeliveryStartedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("delivery started", "order_id", result.OrderID, "courier_id", cmd.AccountID)

	return result, nil
}
