package usecases

import (
	"context"
	"strings"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/sanitize"
)

const ownerResolutionReject = "REJECT"

// ResolveOwnerIssueCommand is the owner-queue shortcut: posting an
// OWNER_REFUND resolution closes the issue, approves the refund, and moves
// the linked order to REFUNDED; posting a REJECT resolution closes the
// issue with the refund rejected and leaves the order untouched.
type ResolveOwnerIssueCommand struct {
	IssueID    uint
	AccountID  uint
	Resolution string
	Amount     *int64
	Reason     string
}

type ResolveOwnerIssueResult struct {
	IssueID           uint
	Status            string
	OwnerRefundStatus string
	OwnerRefundAmount *int64
	OrderStatus       string
}

type ResolveOwnerIssueUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewResolveOwnerIssueUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *ResolveOwnerIssueUseCase {
	return &ResolveOwnerIssueUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *ResolveOwnerIssueUseCase) Execute(ctx context.Context, cmd ResolveOwnerIssueCommand) (*ResolveOwnerIssueResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsOwner() {
		return nil, errors.NewForbiddenError("only restaurant owners can resolve from the owner queue")
	}

	resolution := strings.ToUpper(strings.TrimSpace(cmd.Resolution))
	if resolution != vo.EventOwnerRefund.String() && resolution != ownerResolutionReject {
		return nil, errors.NewValidationError("resolution must be OWNER_REFUND or REJECT")
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

	oldRefundStatus := iss.OwnerRefundStatus()
	reason := sanitize.Text(cmd.Reason)
	refundOrder := false

	if resolution == ownerResolutionReject {
		if err := iss.RejectByOwnerRefund(reason); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else {
		if cmd.Amount == nil {
			return nil, errors.NewValidationError("refund amount is required")
		}
		if err := iss.ResolveByOwnerRefund(*cmd.Amount, reason); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := ord.MarkRefunded(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		refundOrder = true
	}

	event, err := issue.NewDecisionEvent(
		vo.EventOwnerRefund,
		iss.ID(), actor.ID, actor.Role,
		oldRefundStatus, iss.OwnerRefundStatus(),
		iss.OwnerRefundAmount(),
		reason,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		if refundOrder {
			if err := uc.orderRepo.Update(txCtx, ord); err != nil {
				return err
			}
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve owner issue", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("owner issue resolved",
		"issue_id", iss.ID(), "resolution", resolution, "order_id", ord.ID(), "order_status", ord.Status())

	return &ResolveOwnerIssueResult{
		IssueID:           iss.ID(),
		Status:            iss.Status().String(),
		OwnerRefundStatus: iss.OwnerRefundStatus().String(),
		OwnerRefundAmount: iss.OwnerRefundAmount(),
		OrderStatus:       ord.Status().String(),
	}, nil
}
