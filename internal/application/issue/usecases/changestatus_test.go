package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishpatch/internal/domain/account"
	"dishpatch/internal/domain/issue"
	vo "dishpatch/internal/domain/issue/valueobjects"
	"dishpatch/internal/shared/errors"
)

func TestChangeStatusUseCase_Execute_Success(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	owner := testAccount(t, testOwnerID, account.RoleOwner)

	var updated *issue.Issue
	issueRepo.UpdateFunc = func(ctx context.Context, iss *issue.Issue) error {
		updated = iss
		return nil
	}
	var saved *issue.Event
	eventRepo := &mockEventRepository{
		SaveFunc: func(ctx context.Context, event *issue.Event) error {
			saved = event
			return nil
		},
	}

	useCase := NewChangeStatusUseCase(issueRepo, eventRepo, orderRepo, accountRepoOf(t, owner), noTx(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		IssueID:   testIssueID,
		AccountID: testOwnerID,
		Status:    "NEED_ADMIN_ACTION",
		Reason:    "needs a platform decision",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusNeedOwnerAction.String(), result.OldStatus)
	assert.Equal(t, vo.StatusNeedAdminAction.String(), result.NewStatus)

	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusNeedAdminAction, updated.Status())
	require.NotNil(t, saved)
	assert.Equal(t, vo.EventStatusChange, saved.Type())
	assert.Equal(t, vo.StatusNeedOwnerAction.String(), saved.OldValue())
	assert.Equal(t, vo.StatusNeedAdminAction.String(), saved.NewValue())
}

func TestChangeStatusUseCase_Execute_CustomerForbidden(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	customer := testAccount(t, testCustomerID, account.RoleCustomer)

	useCase := NewChangeStatusUseCase(issueRepo, &mockEventRepository{}, orderRepo, accountRepoOf(t, customer), noTx(), &mockLogger{})

	_, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		IssueID:   testIssueID,
		AccountID: testCustomerID,
		Status:    "CLOSED",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestChangeStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	iss := testLinkedIssue(t)
	require.NoError(t, iss.ChangeStatus(vo.StatusClosed, "done"))

	issueRepo := &mockIssueRepository{
		FindByIDFunc: func(ctx context.Context, issueID uint) (*issue.Issue, error) {
			return iss, nil
		},
	}
	_, orderRepo := linkedIssueRepos(t)
	admin := testAccount(t, testAdminID, account.RoleAdmin)

	useCase := NewChangeStatusUseCase(issueRepo, &mockEventRepository{}, orderRepo, accountRepoOf(t, admin), noTx(), &mockLogger{})

	_, err := useCase.Execute(context.Background(), ChangeStatusCommand{
		IssueID:   testIssueID,
		AccountID: testAdminID,
		Status:    "OPEN",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "cannot transition")
}
