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

type AddAttachmentCommand struct {
	IssueID       uint
	AccountID     uint
	AttachmentURL string
	Note          string
}

type AddAttachmentResult struct {
	EventID   uint
	CreatedAt time.Time
}

type AddAttachmentUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewAddAttachmentUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	url := sanitize.Text(cmd.AttachmentURL)
	if len(url) == 0 {
		return nil, errors.NewValidationError("attachment URL is required")
	}

	iss, ord, err := loadIssueWithOrder(ctx, uc.issueRepo, uc.orderRepo, cmd.IssueID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(actor, iss, ord); err != nil {
		return nil, err
	}

	event, err := issue.NewAttachmentEvent(iss.ID(), actor.ID, actor.Role, url, sanitize.Text(cmd.Note))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.eventRepo.Save(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to append attachment event", "issue_id", iss.ID(), "error", err)
		return nil, err
	}

	return &AddAttachmentResult{
		EventID:   event.ID(),
		CreatedAt: event.CreatedAt(),
	}, nil
}
