package usecases

import (
	"context"
	"strings"

	"dishpatch/internal/application/issue/dto"
	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/shared/errors"
	"dishpatch/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListIssuesQuery struct {
	AccountID uint
	Scope     string
	Status    string
	Category  string
	Page      int
	PageSize  int
}

type ListIssuesResult struct {
	Issues     []dto.IssueDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListIssuesUseCase struct {
	issueRepo   issue.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListIssuesUseCase(
	issueRepo issue.Repository,
	accountRepo account.Repository,
	log logger.Interface,
) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo:   issueRepo,
		accountRepo: accountRepo,
		logger:      log,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	actor, err := loadActor(ctx, uc.accountRepo, query.AccountID)
	if err != nil {
		return nil, err
	}

	scope := issue.ListScope(strings.ToUpper(strings.TrimSpace(query.Scope)))
	if scope == "" {
		scope = issue.ScopeMy
	}
	if !scope.IsValid() {
		return nil, errors.NewValidationError("scope must be MY, ASSIGNED, or ALL")
	}
	if scope == issue.ScopeAll && !actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list all issues")
	}

	filter := issue.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	switch scope {
	case issue.ScopeMy:
		creatorID := actor.ID
		filter.CreatorID = &creatorID
	case issue.ScopeAssigned:
		assignedID := actor.ID
		filter.AssignedToID = &assignedID
	}

	if len(query.Status) > 0 {
		status, err := vo.NewIssueStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if len(query.Category) > 0 {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	items := make([]dto.IssueDTO, 0, len(issues))
	for _, iss := range issues {
		items = append(items, dto.ToIssueDTO(iss))
	}

	return &ListIssuesResult{
		Issues:     items,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}
