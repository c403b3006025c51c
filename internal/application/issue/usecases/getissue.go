package usecases

import (
	"context"

	"dishpatch/internal/application/issue/dto"
	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID   uint
	Code      string
	AccountID uint
}

type GetIssueUseCase struct {
	issueRepo   issue.Repository
	eventRepo   issue.EventRepository
	orderRepo   order.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetIssueUseCase(
	issueRepo issue.Repository,
	eventRepo issue.EventRepository,
	orderRepo order.Repository,
	accountRepo account.Repository,
	log logger.Interface,
) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo:   issueRepo,
		eventRepo:   eventRepo,
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		logger:      log,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDetailDTO, error) {
	actor, err := loadActor(ctx, uc.accountRepo, query.AccountID)
	if err != nil {
		return nil, err
	}

	var iss *issue.Issue
	switch {
	case query.IssueID != 0:
		iss, err = uc.issueRepo.FindByID(ctx, query.IssueID)
	case query.Code != "":
		iss, err = uc.issueRepo.FindByCode(ctx, query.Code)
	default:
		err = errors.NewValidationError("issue ID or code is required")
	}
	if err != nil {
		return nil, err
	}

	var ord *order.Order
	if iss.OrderID() != nil {
		ord, err = uc.orderRepo.FindByID(ctx, *iss.OrderID())
		if err != nil {
			return nil, err
		}
	}
	if err := requireAccess(actor, iss, ord); err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.ListByIssueID(ctx, iss.ID())
	if err != nil {
		return nil, err
	}

	return &dto.IssueDetailDTO{
		Issue:  dto.ToIssueDTO(iss),
		Events: dto.ToEventDTOs(events),
		Order:  dto.ToOrderSummaryDTO(ord),
	}, nil
}
