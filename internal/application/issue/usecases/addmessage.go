package usecases

import (
	"context"
	"time"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/sanitize"
)

type AddMessageCommand struct {
	IssueID   uint
	AccountID uint
	Content   string
}

type AddMessageResult struct {
	EventID   uint
	CreatedAt time.Time
}

type AddMessageUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewAddMessageUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	content := sanitize.Text(cmd.Content)
	if len(content) == 0 {
		return nil, errors.NewValidationError("message content is required")
	}

	iss, ord, err := loadIssueWithOrder(ctx, uc.issueRepo, uc.orderRepo, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(actor, iss, ord); err != nil {
		uc.logger.Warnw("message rejected", "issue_id", cmd.IssueID, "account_id", cmd.AccountID)
		return nil, err
	}

	event, err := issue.NewMessageEvent(iss.ID(), actor.ID, actor.Role, content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to append message event", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	return &AddMessageResult{
		EventID:   event.ID(),
		CreatedAt: event.CreatedAt(),
	}, nil
}
