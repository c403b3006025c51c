package usecases

import (
	"context"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	"dishpatch/internal/domain/order"
	"dishpatch/internal/shared/errors"
)

// loadActor resolves the acting account. A missing account is a not-found
// condition, distinguished from an existing account lacking rights.
func loadActor(ctx context.Context, repo account.Repository, accountID uint) (issue.Actor, error) {
	if accountID == 0 {
		return issue.Actor{}, errors.NewValidationError("account ID is required")
	}

	acc, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return issue.Actor{}, err
	}

	return issue.Actor{
		ID:   acc.ID(),
		Role: account.NormalizeRole(acc.Role().String()),
	}, nil
}

// loadIssueWithOrder fetches the issue and, when linked, its order.
func loadIssueWithOrder(
	ctx context.Context,
	issueRepo issue.Repository,
	orderRepo order.Repository,
	issueID uint,
) (*issue.Issue, *order.Order, error) {
	if issueID == 0 {
		return nil, nil, errors.NewValidationError("issue ID is required")
	}

	iss, err := issueRepo.FindByID(ctx, issueID)
	if err != nil {
		return nil, nil, err
	}

	var ord *order.Order
	if iss.OrderID() != nil {
		ord, err = orderRepo.FindByID(ctx, *iss.OrderID())
		if err != nil {
			return nil, nil, err
		}
	}

	return iss, ord, nil
}

// requireAccess enforces the role capability matrix for an existing issue.
func requireAccess(actor issue.Actor, iss *issue.Issue, ord *order.Order) error {
	if !issue.CanAccess(actor, iss, ord) {
		return errors.NewForbiddenError("access to this issue is not allowed")
	}
	return nil
}
