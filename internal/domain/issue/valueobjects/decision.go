package valueobjects

import (
	"fmt"
	"strings"
)

// DecisionStatus tracks one financial decision track (owner refund or
// admin credit) independently of the issue status.
type DecisionStatus string

const (
	DecisionNone     DecisionStatus = "NONE"
	DecisionPending  DecisionStatus = "PENDING"
	DecisionApproved DecisionStatus = "APPROVED"
	DecisionRejected DecisionStatus = "REJECTED"
)

var validDecisionStatuses = map[DecisionStatus]bool{
	DecisionNone:     true,
	DecisionPending:  true,
	DecisionApproved: true,
	DecisionRejected: true,
}

func (d DecisionStatus) String() string {
	return string(d)
}

func (d DecisionStatus) IsValid() bool {
	return validDecisionStatuses[d]
}

func (d DecisionStatus) IsApproved() bool {
	return d == DecisionApproved
}

func (d DecisionStatus) IsRejected() bool {
	return d == DecisionRejected
}

// NewDecision parses an APPROVED/REJECTED verdict supplied by a caller.
// NONE and PENDING are internal states and cannot be requested.
func NewDecision(s string) (DecisionStatus, error) {
	d := DecisionStatus(strings.ToUpper(strings.TrimSpace(s)))
	if d != DecisionApproved && d != DecisionRejected {
		return "", fmt.Errorf("invalid decision: %s", s)
	}
	return d, nil
}
