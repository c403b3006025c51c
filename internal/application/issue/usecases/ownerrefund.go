package usecases

import (
	"context"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/sanitize"
)

type OwnerRefundCommand struct {
	IssueID   uint
	AccountID uint
	Decision  string
	Amount    *int64
	Note      string
}

type OwnerRefundResult struct {
	IssueID           uint
	OwnerRefundStatus string
	OwnerRefundAmount *int64
}

// OwnerRefundUseCase records the restaurant owner's verdict on the refund
// track. The base operation does not move the issue status or the order;
// the owner queue path (ResolveOwnerIssueUseCase) layers that on top.
type OwnerRefundUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewOwnerRefundUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *OwnerRefundUseCase {
	return &OwnerRefundUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *OwnerRefundUseCase) Execute(ctx context.Context, cmd OwnerRefundCommand) (*OwnerRefundResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsOwner() {
		return nil, errors.NewForbiddenError("only restaurant owners can decide refunds")
	}

	decision, err := vo.NewDecision(cmd.Decision)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	iss, ord, err := loadIssueWithOrder(ctx, uc.issueRepo, uc.orderRepo, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, errors.NewValidationError("issue has no linked order")
	}
	if ord.RestaurantOwnerID() != actor.ID {
		return nil, errors.NewForbiddenError("you do not own the restaurant on this order")
	}

	oldStatus := iss.OwnerRefundStatus()
	if err := iss.DecideOwnerRefund(decision, cmd.Amount); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	event, err := issue.NewDecisionEvent(
		vo.EventOwnerRefund,
		iss.ID(), actor.ID, actor.Role,
		oldStatus, iss.OwnerRefundStatus(),
		iss.OwnerRefundAmount(),
		sanitize.Text(cmd.Note),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to record owner refund decision", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("owner refund decided",
		"issue_id", iss.ID(), "decision", decision, "amount", cmd.Amount, "account_id", actor.ID)

	return &OwnerRefundResult{
		IssueID:           iss.ID(),
		OwnerRefundStatus: iss.OwnerRefundStatus().String(),
		OwnerRefundAmount: iss.OwnerRefundAmount(),
	}, nil
}
