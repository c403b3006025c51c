// Package issue holds the dispute aggregate, its append-only event log, and
// the role capability rules that guard every workflow operation.
package issue

import (
	"fmt"
	"time"

	"dishpatch/internal/domain/account"
	vo "dishpatch/internal/domain/issue/valueobjects"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Issue is the dispute aggregate. All mutation goes through the methods
// below; every mutation stamps updatedAt.
type Issue struct {
	id            uint
	code          string
	orderID       *uint
	createdByID   uint
	createdByRole account.Role
	targetType    vo.TargetType
	targetID      *uint
	targetNote    string
	category      vo.Category
	otherCategory string
	title         string
	description   string

	assignedOwnerID *uint
	assignedAdminID *uint
	status          vo.IssueStatus

	ownerRefundStatus vo.DecisionStatus
	ownerRefundAmount *int64
	adminCreditStatus vo.DecisionStatus
	adminCreditAmount *int64

	resolvedReason string
	resolvedAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewIssue validates the creation input and applies the deterministic
// routing rules: unlinked issues and delivery/shipper complaints go to a
// platform admin, merchant complaints go to the restaurant owner with the
// refund track opened as PENDING.
func NewIssue(
	orderID *uint,
	createdByID uint,
	createdByRole account.Role,
	targetType vo.TargetType,
	targetID *uint,
	targetNote string,
	category vo.Category,
	otherCategory string,
	title string,
	description string,
	restaurantOwnerID *uint,
) (*Issue, error) {
	if createdByID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if !createdByRole.IsValid() {
		return nil, fmt.Errorf("invalid creator role: %s", createdByRole)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !targetType.IsValid() {
		return nil, fmt.Errorf("invalid target type")
	}
	if category.IsOther() && len(otherCategory) == 0 {
		return nil, fmt.Errorf("other category description is required when category is OTHER")
	}
	if targetType.RequiresOrder() && orderID == nil {
		return nil, fmt.Errorf("order ID is required for target type %s", targetType)
	}

	now := time.Now().UTC()
	i := &Issue{
		orderID:           orderID,
		createdByID:       createdByID,
		createdByRole:     createdByRole,
		targetType:        targetType,
		targetID:          targetID,
		targetNote:        targetNote,
		category:          category,
		otherCategory:     otherCategory,
		title:             title,
		description:       description,
		ownerRefundStatus: vo.DecisionNone,
		adminCreditStatus: vo.DecisionNone,
		createdAt:         now,
		updatedAt:         now,
	}
	i.route(restaurantOwnerID)

	return i, nil
}

// route decides the initial responsible role. Evaluated once at creation
// and never re-evaluated automatically.
func (i *Issue) route(restaurantOwnerID *uint) {
	switch {
	case i.orderID == nil:
		i.status = vo.StatusNeedAdminAction
	case i.category.IsMerchant():
		i.assignedOwnerID = restaurantOwnerID
		i.status = vo.StatusNeedOwnerAction
		i.ownerRefundStatus = vo.DecisionPending
	default:
		// delivery categories, SHIPPER targets, and everything else
		i.status = vo.StatusNeedAdminAction
	}
}

func ReconstructIssue(
	id uint,
	code string,
	orderID *uint,
	createdByID uint,
	createdByRole account.Role,
	targetType vo.TargetType,
	targetID *uint,
	targetNote string,
	category vo.Category,
	otherCategory string,
	title string,
	description string,
	assignedOwnerID *uint,
	assignedAdminID *uint,
	status vo.IssueStatus,
	ownerRefundStatus vo.DecisionStatus,
	ownerRefundAmount *int64,
	adminCreditStatus vo.DecisionStatus,
	adminCreditAmount *int64,
	resolvedReason string,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid issue status: %s", status)
	}
	if !ownerRefundStatus.IsValid() || !adminCreditStatus.IsValid() {
		return nil, fmt.Errorf("invalid decision status")
	}

	return &Issue{
		id:                id,
		code:              code,
		orderID:           orderID,
		createdByID:       createdByID,
		createdByRole:     createdByRole,
		targetType:        targetType,
		targetID:          targetID,
		targetNote:        targetNote,
		category:          category,
		otherCategory:     otherCategory,
		title:             title,
		description:       description,
		assignedOwnerID:   assignedOwnerID,
		assignedAdminID:   assignedAdminID,
		status:            status,
		ownerRefundStatus: ownerRefundStatus,
		ownerRefundAmount: ownerRefundAmount,
		adminCreditStatus: adminCreditStatus,
		adminCreditAmount: adminCreditAmount,
		resolvedReason:    resolvedReason,
		resolvedAt:        resolvedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (i *Issue) ID() uint                             { return i.id }
func (i *Issue) Code() string                         { return i.code }
func (i *Issue) OrderID() *uint                       { return i.orderID }
func (i *Issue) CreatedByID() uint                    { return i.createdByID }
func (i *Issue) CreatedByRole() account.Role          { return i.createdByRole }
func (i *Issue) TargetType() vo.TargetType            { return i.targetType }
func (i *Issue) TargetID() *uint                      { return i.targetID }
func (i *Issue) TargetNote() string                   { return i.targetNote }
func (i *Issue) Category() vo.Category                { return i.category }
func (i *Issue) OtherCategory() string                { return i.otherCategory }
func (i *Issue) Title() string                        { return i.title }
func (i *Issue) Description() string                  { return i.description }
func (i *Issue) AssignedOwnerID() *uint               { return i.assignedOwnerID }
func (i *Issue) AssignedAdminID() *uint               { return i.assignedAdminID }
func (i *Issue) Status() vo.IssueStatus               { return i.status }
func (i *Issue) OwnerRefundStatus() vo.DecisionStatus { return i.ownerRefundStatus }
func (i *Issue) OwnerRefundAmount() *int64            { return i.ownerRefundAmount }
func (i *Issue) AdminCreditStatus() vo.DecisionStatus { return i.adminCreditStatus }
func (i *Issue) AdminCreditAmount() *int64            { return i.adminCreditAmount }
func (i *Issue) ResolvedReason() string               { return i.resolvedReason }
func (i *Issue) ResolvedAt() *time.Time               { return i.resolvedAt }
func (i *Issue) CreatedAt() time.Time                 { return i.createdAt }
func (i *Issue) UpdatedAt() time.Time                 { return i.updatedAt }

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// SetCode assigns the human-readable code exactly once. The code embeds the
// generated row id, so it can only exist after the insert.
func (i *Issue) SetCode(code string) error {
	if len(i.code) > 0 {
		return fmt.Errorf("issue code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("issue code cannot be empty")
	}
	i.code = code
	return nil
}

// FormatCode builds the canonical issue code from the persisted id and
// creation date: ISS-<yyyymmdd>-<6-digit id>.
func FormatCode(id uint, createdAt time.Time) string {
	return fmt.Sprintf("ISS-%s-%06d", createdAt.UTC().Format("20060102"), id)
}

// AssignAdmin records the admin now handling the issue.
func (i *Issue) AssignAdmin(adminID uint) error {
	if adminID == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	i.assignedAdminID = &adminID
	i.updatedAt = time.Now().UTC()
	return nil
}

// ChangeStatus applies a manual OWNER/ADMIN status change. Entering
// RESOLVED or CLOSED stamps the resolution metadata.
func (i *Issue) ChangeStatus(newStatus vo.IssueStatus, reason string) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid issue status: %s", newStatus)
	}
	if i.status == newStatus {
		return nil
	}
	if !i.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition issue from %s to %s", i.status, newStatus)
	}

	now := time.Now().UTC()
	i.status = newStatus
	i.updatedAt = now

	if newStatus.SetsResolvedAt() {
		i.resolvedAt = &now
		i.resolvedReason = reason
	}

	return nil
}

// DecideOwnerRefund records the restaurant owner's verdict on the refund
// track. The amount is required and positive on approval and cleared on
// rejection. Re-rejecting an already rejected refund is a valid no-op state.
func (i *Issue) DecideOwnerRefund(decision vo.DecisionStatus, amount *int64) error {
	switch decision {
	case vo.DecisionApproved:
		if amount == nil || *amount <= 0 {
			return fmt.Errorf("refund amount must be positive when approving")
		}
		i.ownerRefundStatus = vo.DecisionApproved
		i.ownerRefundAmount = amount
	case vo.DecisionRejected:
		i.ownerRefundStatus = vo.DecisionRejected
		i.ownerRefundAmount = nil
	default:
		return fmt.Errorf("invalid refund decision: %s", decision)
	}

	i.updatedAt = time.Now().UTC()
	return nil
}

// DecideAdminCredit records the platform admin's verdict on the credit
// track. Unlike the owner refund, this decision also finishes the issue:
// approval resolves it, rejection rejects it and clears the amount, and
// either way the resolution metadata is stamped. A closed issue can no
// longer be re-decided.
func (i *Issue) DecideAdminCredit(decision vo.DecisionStatus, amount *int64, note string) error {
	if i.status.IsClosed() {
		return fmt.Errorf("issue %d is already closed", i.id)
	}

	now := time.Now().UTC()

	switch decision {
	case vo.DecisionApproved:
		if amount == nil || *amount < 0 {
			return fmt.Errorf("credit amount is required when approving")
		}
		i.adminCreditStatus = vo.DecisionApproved
		i.adminCreditAmount = amount
		i.status = vo.StatusResolved
	case vo.DecisionRejected:
		i.adminCreditStatus = vo.DecisionRejected
		i.adminCreditAmount = nil
		i.status = vo.StatusRejected
	default:
		return fmt.Errorf("invalid credit decision: %s", decision)
	}

	i.resolvedAt = &now
	i.resolvedReason = note
	i.updatedAt = now
	return nil
}

// ResolveByOwnerRefund closes the issue through the owner queue path:
// refund approved with the given amount, issue CLOSED, resolution stamped.
// The caller is responsible for moving the linked order to REFUNDED.
func (i *Issue) ResolveByOwnerRefund(amount int64, reason string) error {
	if amount <= 0 {
		return fmt.Errorf("refund amount must be positive")
	}
	if i.status.IsClosed() {
		return fmt.Errorf("issue %d is already closed", i.id)
	}

	now := time.Now().UTC()
	i.ownerRefundStatus = vo.DecisionApproved
	i.ownerRefundAmount = &amount
	i.status = vo.StatusClosed
	i.resolvedAt = &now
	i.resolvedReason = reason
	i.updatedAt = now
	return nil
}

// RejectByOwnerRefund closes the issue through the owner queue path with
// the refund rejected. The linked order is left untouched.
func (i *Issue) RejectByOwnerRefund(reason string) error {
	if i.status.IsClosed() {
		return fmt.Errorf("issue %d is already closed", i.id)
	}

	now := time.Now().UTC()
	i.ownerRefundStatus = vo.DecisionRejected
	i.ownerRefundAmount = nil
	i.status = vo.StatusClosed
	i.resolvedAt = &now
	i.resolvedReason = reason
	i.updatedAt = now
	return nil
}
