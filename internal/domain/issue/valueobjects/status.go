package valueobjects

import (
	"fmt"
	"strings"
)

type IssueStatus string

const (
	StatusOpen            IssueStatus = "OPEN"
	StatusNeedOwnerAction IssueStatus = "NEED_OWNER_ACTION"
	StatusNeedAdminAction IssueStatus = "NEED_ADMIN_ACTION"
	StatusResolved        IssueStatus = "RESOLVED"
	StatusRejected        IssueStatus = "REJECTED"
	StatusClosed          IssueStatus = "CLOSED"
)

var validIssueStatuses = map[IssueStatus]bool{
	StatusOpen:            true,
	StatusNeedOwnerAction: true,
	StatusNeedAdminAction: true,
	StatusResolved:        true,
	StatusRejected:        true,
	StatusClosed:          true,
}

// issueStatusTransitions restricts manual status changes. Active states may
// move between one another or finish; RESOLVED and REJECTED may still be
// closed for the record; CLOSED is terminal.
var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusOpen: {
		StatusNeedOwnerAction,
		StatusNeedAdminAction,
		StatusResolved,
		StatusRejected,
		StatusClosed,
	},
	StatusNeedOwnerAction: {
		StatusOpen,
		StatusNeedAdminAction,
		StatusResolved,
		StatusRejected,
		StatusClosed,
	},
	StatusNeedAdminAction: {
		StatusOpen,
		StatusNeedOwnerAction,
		StatusResolved,
		StatusRejected,
		StatusClosed,
	},
	StatusResolved: {StatusClosed},
	StatusRejected: {StatusClosed},
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) CanTransitionTo(newStatus IssueStatus) bool {
	for _, allowed := range issueStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s IssueStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s IssueStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s IssueStatus) IsClosed() bool {
	return s == StatusClosed
}

// IsTerminal reports whether the issue has reached a final state.
func (s IssueStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected || s == StatusClosed
}

// SetsResolvedAt reports whether entering this status stamps the
// resolution metadata.
func (s IssueStatus) SetsResolvedAt() bool {
	return s == StatusResolved || s == StatusClosed
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
