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

func TestAdminCreditUseCase_Execute_ApproveResolvesIssue(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	admin := testAccount(t, testAdminID, account.RoleAdmin)

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

	useCase := NewAdminCreditUseCase(issueRepo, eventRepo, orderRepo, accountRepoOf(t, admin), noTx(), &mockLogger{})

	amount := int64(300)
	result, err := useCase.Execute(context.Background(), AdminCreditCommand{
		IssueID:   testIssueID,
		AccountID: testAdminID,
		Decision:  "APPROVED",
		Amount:    &amount,
		Note:      "goodwill credit",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved.String(), result.Status)
	assert.Equal(t, vo.DecisionApproved.String(), result.AdminCreditStatus)
	require.NotNil(t, result.AdminCreditAmount)
	assert.Equal(t, int64(300), *result.AdminCreditAmount)

	require.NotNil(t, updated)
	require.NotNil(t, updated.AssignedAdminID())
	assert.Equal(t, testAdminID, *updated.AssignedAdminID())
	assert.NotNil(t, updated.ResolvedAt())
	assert.Equal(t, "goodwill credit", updated.ResolvedReason())

	require.NotNil(t, saved)
	assert.Equal(t, vo.EventAdminCredit, saved.Type())
}

func TestAdminCreditUseCase_Execute_RejectRejectsIssue(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	admin := testAccount(t, testAdminID, account.RoleAdmin)

	useCase := NewAdminCreditUseCase(issueRepo, &mockEventRepository{}, orderRepo, accountRepoOf(t, admin), noTx(), &mockLogger{})

	result, err := useCase.Execute(context.Background(), AdminCreditCommand{
		IssueID:   testIssueID,
		AccountID: testAdminID,
		Decision:  "REJECTED",
		Note:      "not covered",
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusRejected.String(), result.Status)
	assert.Equal(t, vo.DecisionRejected.String(), result.AdminCreditStatus)
	assert.Nil(t, result.AdminCreditAmount)
}

func TestAdminCreditUseCase_Execute_ApproveWithoutAmount(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	admin := testAccount(t, testAdminID, account.RoleAdmin)

	useCase := NewAdminCreditUseCase(issueRepo, &mockEventRepository{}, orderRepo, accountRepoOf(t, admin), noTx(), &mockLogger{})

	_, err := useCase.Execute(context.Background(), AdminCreditCommand{
		IssueID:   testIssueID,
		AccountID: testAdminID,
		Decision:  "APPROVED",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "credit amount is required")
}

func TestAdminCreditUseCase_Execute_NonAdminForbidden(t *testing.T) {
	issueRepo, orderRepo := linkedIssueRepos(t)
	owner := testAccount(t, testOwnerID, account.RoleOwner)

	useCase := NewAdminCreditUseCase(issueRepo, &mockEventRepository{}, orderRepo, accountRepoOf(t, owner), noTx(), &mockLogger{})

	amount := int64(300)
	_, err := useCase.Execute(context.Background(), AdminCreditCommand{
		IssueID:   testIssueID,
		AccountID: testOwnerID,
		Decision:  "APPROVED",
		Amount:    &amount,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
