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

type AdminCreditCommand struct {
	IssueID   uint
	AccountID uint
	Decision  string
	Amount    *int64
	Note      string
}

type AdminCreditResult struct {
	IssueID           uint
	Status            string
	AdminCreditStatus string
	AdminCreditAmount *int64
}

// AdminCreditUseCase records a platform admin's verdict on the credit
// track. The decision finishes the issue: approval resolves it, rejection
// rejects it.
type AdminCreditUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewAdminCreditUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *AdminCreditUseCase {
	return &AdminCreditUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *AdminCreditUseCase) Execute(ctx context.Context, cmd AdminCreditCommand) (*AdminCreditResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can decide platform credits")
	}

	decision, err := vo.NewDecision(cmd.Decision)
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

	oldStatus := iss.AdminCreditStatus()
	note := sanitize.Text(cmd.Note)
	if err := iss.DecideAdminCredit(decision, cmd.Amount, note); err != nil {
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

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to record admin credit decision", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("admin credit decided",
		"issue_id", iss.ID(), "decision", decision, "amount", cmd.Amount, "account_id", actor.ID)

	return &AdminCreditResult{
		IssueID:           iss.ID(),
		Status:            iss.Status().String(),
		AdminCreditStatus: iss.AdminCreditStatus().String(),
		AdminCreditAmount: iss.AdminCreditAmount(),
	}, nil
}
