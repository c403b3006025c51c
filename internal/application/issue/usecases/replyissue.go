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

// DecisionInput is one financial verdict inside a combined reply.
type DecisionInput struct {
	Decision string
	Amount   *int64
	Note     string
}

// ReplyIssueCommand bundles up to four sub-actions in one atomic call:
// a message, a status change, an owner refund decision, and an admin
// credit decision. Admin credit and an explicit status change are mutually
// exclusive because the credit verdict sets the status itself.
type ReplyIssueCommand struct {
	IssueID      uint
	AccountID    uint
	Message      string
	Status       string
	StatusReason string
	OwnerRefund  *DecisionInput
	AdminCredit  *DecisionInput
}

type ReplyIssueResult struct {
	IssueID           uint
	Status            string
	OwnerRefundStatus string
	AdminCreditStatus string
	EventCount        int
}

type ReplyIssueUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewReplyIssueUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *ReplyIssueUseCase {
	return &ReplyIssueUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *ReplyIssueUseCase) Execute(ctx context.Context, cmd ReplyIssueCommand) (*ReplyIssueResult, error) {
	message := sanitize.Text(cmd.Message)
	hasMessage := len(message) > 0
	hasStatus := len(cmd.Status) > 0

	if !hasMessage && !hasStatus && cmd.OwnerRefund == nil && cmd.AdminCredit == nil {
		return nil, errors.NewValidationError("at least one reply action is required")
	}
	if hasStatus && cmd.AdminCredit != nil {
		return nil, errors.NewValidationError("admin credit already sets the issue status; do not combine it with an explicit status change")
	}

	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	iss, ord, err := loadIssueWithOrder(ctx, uc.issueRepo, uc.orderRepo, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(actor, iss, ord); err != nil {
		return nil, err
	}

	// Each sub-action validates and mutates the in-memory aggregate only.
	// Nothing is persisted until every sub-action has passed, then the
	// issue update and all events commit in one transaction.
	events := make([]*issue.Event, 0, 4)
	mutated := false

	if hasMessage {
		event, err := issue.NewMessageEvent(iss.ID(), actor.ID, actor.Role, message)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		events = append(events, event)
	}

	if hasStatus {
		if !actor.Role.IsOwner() && !actor.Role.IsAdmin() {
			return nil, errors.NewForbiddenError("only owners and admins can change issue status")
		}
		newStatus, err := vo.NewIssueStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		oldStatus := iss.Status()
		reason := sanitize.Text(cmd.StatusReason)
		if err := iss.ChangeStatus(newStatus, reason); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		event, err := issue.NewStatusChangeEvent(iss.ID(), actor.ID, actor.Role, oldStatus, newStatus, reason)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		events = append(events, event)
		mutated = true
	}

	if cmd.OwnerRefund != nil {
		if !actor.Role.IsOwner() {
			return nil, errors.NewForbiddenError("only restaurant owners can decide refunds")
		}
		if ord == nil {
			return nil, errors.NewValidationError("issue has no linked order")
		}
		if ord.RestaurantOwnerID() != actor.ID {
			return nil, errors.NewForbiddenError("you do not own the restaurant on this order")
		}
		decision, err := vo.NewDecision(cmd.OwnerRefund.Decision)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		oldStatus := iss.OwnerRefundStatus()
		if err := iss.DecideOwnerRefund(decision, cmd.OwnerRefund.Amount); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		event, err := issue.NewDecisionEvent(
			vo.EventOwnerRefund,
			iss.ID(), actor.ID, actor.Role,
			oldStatus, iss.OwnerRefundStatus(),
			iss.OwnerRefundAmount(),
			sanitize.Text(cmd.OwnerRefund.Note),
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		events = append(events, event)
		mutated = true
	}

	if cmd.AdminCredit != nil {
		if !actor.Role.IsAdmin() {
			return nil, errors.NewForbiddenError("only admins can decide platform credits")
		}
		decision, err := vo.NewDecision(cmd.AdminCredit.Decision)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		note := sanitize.Text(cmd.AdminCredit.Note)
		oldStatus := iss.AdminCreditStatus()
		if err := iss.DecideAdminCredit(decision, cmd.AdminCredit.Amount, note); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := iss.AssignAdmin(actor.ID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		event, err := issue.NewDecisionEvent(
			vo.EventAdminCredit,
			iss.ID(), actor.ID, actor.Role,
			oldStatus, iss.AdminCreditStatus(),
			iss.AdminCreditAmount(),
			note,
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		events = append(events, event)
		mutated = true
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if mutated {
			if err := uc.issueRepo.Update(txCtx, iss); err != nil {
				return err
			}
		}
		return uc.eventRepo.SaveAll(txCtx, events)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist issue reply", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("issue reply recorded",
		"issue_id", iss.ID(), "account_id", actor.ID, "events", len(events))

	return &ReplyIssueResult{
		IssueID:           iss.ID(),
		Status:            iss.Status().String(),
		OwnerRefundStatus: iss.OwnerRefundStatus().String(),
		AdminCreditStatus: iss.AdminCreditStatus().String(),
		EventCount:        len(events),
	}, nil
}
