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

type ChangeStatusCommand struct {
	IssueID   uint
	AccountID uint
	Status    string
	Reason    string
}

type ChangeStatusResult struct {
	IssueID   uint
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsOwner() && !actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only owners and admins can change issue status")
	}

	newStatus, err := vo.NewIssueStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	iss, ord, err := loadIssueWithOrder(ctx, uc.issueRepo, uc.orderRepo, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(actor, iss, ord); err != nil {
		return nil, err
	}

	oldStatus := iss.Status()
	reason := sanitize.Text(cmd.Reason)
	if err := iss.ChangeStatus(newStatus, reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	event, err := issue.NewStatusChangeEvent(iss.ID(), actor.ID, actor.Role, oldStatus, newStatus, reason)
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
		uc.logger.Errorw("failed to change issue status", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("issue status changed",
		"issue_id", iss.ID(), "old_status", oldStatus, "new_status", newStatus, "account_id", actor.ID)

	return &ChangeStatusResult{
		IssueID:   iss.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: iss.Status().String(),
	}, nil
}
