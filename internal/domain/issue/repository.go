package issue

import (
	"context"

	vo "dishpatch/internal/domain/issue/valueobjects"
)

// ListScope selects which slice of issues a listing returns.
type ListScope string

const (
	ScopeMy       ListScope = "MY"
	ScopeAssigned ListScope = "ASSIGNED"
	ScopeAll      ListScope = "ALL"
)

func (s ListScope) IsValid() bool {
	return s == ScopeMy || s == ScopeAssigned || s == ScopeAll
}

type Filter struct {
	Status    *vo.IssueStatus
	Category  *vo.Category
	CreatorID *uint
	// AssignedToID matches either the assigned owner or the assigned admin.
	AssignedToID *uint
	Page         int
	PageSize     int
}

type Repository interface {
	// Save inserts the issue and assigns its id and code. The code embeds
	// the generated id, so the insert is two-phase inside the caller's
	// transaction.
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	FindByID(ctx context.Context, issueID uint) (*Issue, error)
	FindByCode(ctx context.Context, code string) (*Issue, error)
	List(ctx context.Context, filter Filter) ([]*Issue, int64, error)
}

// EventRepository is the append-only store backing the issue timeline.
// Events are never updated or deleted.
type EventRepository interface {
	Save(ctx context.Context, event *Event) error
	SaveAll(ctx context.Context, events []*Event) error
	ListByIssueID(ctx context.Context, issueID uint) ([]*Event, error)
}
