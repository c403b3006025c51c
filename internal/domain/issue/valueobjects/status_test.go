package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueStatusTransitions(t *testing.T) {
	tests := []struct {
		from    IssueStatus
		to      IssueStatus
		allowed bool
	}{
		{StatusOpen, StatusNeedOwnerAction, true},
		{StatusOpen, StatusNeedAdminAction, true},
		{StatusOpen, StatusResolved, true},
		{StatusNeedOwnerAction, StatusNeedAdminAction, true},
		{StatusNeedOwnerAction, StatusOpen, true},
		{StatusNeedAdminAction, StatusClosed, true},
		{StatusResolved, StatusClosed, true},
		{StatusRejected, StatusClosed, true},
		{StatusResolved, StatusOpen, false},
		{StatusRejected, StatusNeedOwnerAction, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusResolved, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewIssueStatus(t *testing.T) {
	status, err := NewIssueStatus("  resolved ")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, status)

	_, err = NewIssueStatus("ARCHIVED")
	assert.Error(t, err)
}

func TestIssueStatusPredicates(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusClosed.IsTerminal())
	assert.False(t, StatusNeedOwnerAction.IsTerminal())

	assert.True(t, StatusResolved.SetsResolvedAt())
	assert.True(t, StatusClosed.SetsResolvedAt())
	assert.False(t, StatusRejected.SetsResolvedAt())
}
