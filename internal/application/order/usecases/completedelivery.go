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

type CompleteDeliveryCommand struct {
	OrderID   uint
	AccountID uint
}

type CompleteDeliveryResult struct {
	OrderID     uint
	OrderStatus string
	CompletedAt *time.Time
	Overdue     bool
}

// CompleteDeliveryUseCase finishes a delivery on the courier path. The
// courier must have started the delivery first; completion frees the
// courier back to ONLINE.
type CompleteDeliveryUseCase struct {
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewCompleteDeliveryUseCase(
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *CompleteDeliveryUseCase {
	return &CompleteDeliveryUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *CompleteDeliveryUseCase) Execute(ctx context.Context, cmd CompleteDeliveryCommand) (*CompleteDeliveryResult, error) {
	if cmd.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	var result *CompleteDeliveryResult
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		courier, err := uc.accountRepo.FindByID(txCtx, cmd.AccountID)
		if err != nil {
			return err
		}
		if !account.NormalizeRole(courier.Role().String()).IsShipper() {
			return errors.NewForbiddenError("only couriers can complete a delivery")
		}

		ord, err := uc.orderRepo.FindByID(txCtx, cmd.OrderID)
		if err != nil {
			return err
		}
		if err := ord.CompleteDelivery(courier.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := courier.SetCourierStatus(account.CourierOnline); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.orderRepo.Update(txCtx, ord); err != nil {
			return err
		}
		if err := uc.accountRepo.Update(txCtx, courier); err != nil {
			return err
		}

		result = &CompleteDeliveryResult{
			OrderID:     ord.ID(),
			OrderStatus: ord.Status().String(),
			CompletedAt: ord.CompletedAt(),
			Overdue:     ord.IsOverdue(time.Now().UTC()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("delivery completed",
		"order_id", result.OrderID, "courier_id", cmd.AccountID, "overdue", result.Overdue)

	return result, nil
}
