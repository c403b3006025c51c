package usecases

import (
	"context"
	"time"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
	"dishpatch/internal/shared/sanitize"
)

type CreateIssueCommand struct {
	AccountID     uint
	OrderID       *uint
	TargetType    string
	TargetID      *uint
	TargetNote    string
	Category      string
	OtherCategory string
	Title         string
	Description   string
	// Attachments are appended as one ATTACHMENT event per non-blank URL,
	// inside the same transaction as the creation itself.
	Attachments []string
}

type CreateIssueResult struct {
	IssueID           uint
	Code              string
	Status            string
	OwnerRefundStatus string
	AssignedOwnerID   *uint
	CreatedAt         time.Time
}

type CreateIssueUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	tx          *db.TransactionManager
	logger      logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	tx *db.TransactionManager,
	log logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tx:          tx,
		logger:      log,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "account_id", cmd.AccountID, "order_id", cmd.OrderID)

	actor, err := loadActor(ctx, uc.accountRepo, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	targetType, category, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid create issue command", "error", err)
		return nil, err
	}

	var ord *order.Order
	if cmd.OrderID != nil {
		ord, err = uc.orderRepo.FindByID(ctx, *cmd.OrderID)
		if err != nil {
			return nil, err
		}
		if !ord.Status().IsCompleted() {
			return nil, errors.NewValidationError("issues can only be opened for completed orders")
		}
		if targetType.IsShipper() && ord.ShipperID() == nil {
			return nil, errors.NewValidationError("order has no assigned courier")
		}
	}

	if !issue.CanCreate(actor, ord) {
		return nil, errors.NewForbiddenError("you cannot create an issue for this order")
	}

	var restaurantOwnerID *uint
	if ord != nil {
		ownerID := ord.RestaurantOwnerID()
		restaurantOwnerID = &ownerID
	}

	newIssue, err := issue.NewIssue(
		cmd.OrderID,
		actor.ID,
		actor.Role,
		targetType,
		cmd.TargetID,
		sanitize.Text(cmd.TargetNote),
		category,
		sanitize.Text(cmd.OtherCategory),
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		restaurantOwnerID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}

		events := make([]*issue.Event, 0, 2+len(cmd.Attachments))

		note, err := issue.NewNoteEvent(newIssue.ID(), actor.ID, actor.Role, "issue created")
		if err != nil {
			return err
		}
		events = append(events, note)

		if len(newIssue.Description()) > 0 {
			msg, err := issue.NewMessageEvent(newIssue.ID(), actor.ID, actor.Role, newIssue.Description())
			if err != nil {
				return err
			}
			events = append(events, msg)
		}

		for _, url := range cmd.Attachments {
			cleaned := sanitize.Text(url)
			if len(cleaned) == 0 {
				continue
			}
			att, err := issue.NewAttachmentEvent(newIssue.ID(), actor.ID, actor.Role, cleaned, "")
			if err != nil {
				return err
			}
			events = append(events, att)
		}

		return uc.eventRepo.SaveAll(txCtx, events)
	})
	if err != nil {
		uc.logger.Errorw("failed to create issue", "error", err)
		return nil, err
	}

	uc.logger.Infow("issue created", "issue_id", newIssue.ID(), "code", newIssue.Code(), "status", newIssue.Status())

	return &CreateIssueResult{
		IssueID:           newIssue.ID(),
		Code:              newIssue.Code(),
		Status:            newIssue.Status().String(),
		OwnerRefundStatus: newIssue.OwnerRefundStatus().String(),
		AssignedOwnerID:   newIssue.AssignedOwnerID(),
		CreatedAt:         newIssue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) (vo.TargetType, vo.Category, error) {
	if len(cmd.Title) == 0 {
		return "", "", errors.NewValidationError("title is required")
	}
	if len(cmd.Category) == 0 {
		return "", "", errors.NewValidationError("category is required")
	}
	if len(cmd.TargetType) == 0 {
		return "", "", errors.NewValidationError("target type is required")
	}

	targetType, err := vo.NewTargetType(cmd.TargetType)
	if err != nil {
		return "", "", errors.NewValidationError(err.Error())
	}
	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return "", "", errors.NewValidationError(err.Error())
	}
	if category.IsOther() && len(cmd.OtherCategory) == 0 {
		return "", "", errors.NewValidationError("other category description is required when category is OTHER")
	}
	if targetType.RequiresOrder() && cmd.OrderID == nil {
		return "", "", errors.NewValidationError("order ID is required for this target type")
	}

	return targetType, category, nil
}
