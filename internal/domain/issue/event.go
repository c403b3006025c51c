package issue

import (
	"fmt"
	"time"

	"dishpatch/internal/domain/account"
	vo "dishpatch/internal/domain/issue/valueobjects"
)

const maxEventContentLength = 5000

// Event is one immutable timeline entry on an issue. Events are only ever
// inserted; the ordered list fully reconstructs the issue history.
type Event struct {
	id            uint
	issueID       uint
	accountID     uint
	accountRole   account.Role
	eventType     vo.EventType
	content       string
	oldValue      string
	newValue      string
	amount        *int64
	attachmentURL string
	createdAt     time.Time
}

func newEvent(issueID, accountID uint, role account.Role, eventType vo.EventType) (*Event, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	return &Event{
		issueID:     issueID,
		accountID:   accountID,
		accountRole: role,
		eventType:   eventType,
		createdAt:   time.Now().UTC(),
	}, nil
}

// NewNoteEvent records a system note, e.g. "issue created".
func NewNoteEvent(issueID, accountID uint, role account.Role, content string) (*Event, error) {
	e, err := newEvent(issueID, accountID, role, vo.EventNote)
	if err != nil {
		return nil, err
	}
	e.content = content
	return e, nil
}

// NewMessageEvent records a free-text message on the timeline.
func NewMessageEvent(issueID, accountID uint, role account.Role, content string) (*Event, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("message content cannot be empty")
	}
	if len(content) > maxEventContentLength {
		return nil, fmt.Errorf("message content exceeds maximum length of %d characters", maxEventContentLength)
	}

	e, err := newEvent(issueID, accountID, role, vo.EventMessage)
	if err != nil {
		return nil, err
	}
	e.content = content
	return e, nil
}

// NewAttachmentEvent records an uploaded evidence URL with an optional note.
func NewAttachmentEvent(issueID, accountID uint, role account.Role, url, note string) (*Event, error) {
	if len(url) == 0 {
		return nil, fmt.Errorf("attachment URL cannot be empty")
	}

	e, err := newEvent(issueID, accountID, role, vo.EventAttachment)
	if err != nil {
		return nil, err
	}
	e.attachmentURL = url
	e.content = note
	return e, nil
}

// NewStatusChangeEvent snapshots an issue status transition.
func NewStatusChangeEvent(issueID, accountID uint, role account.Role, oldStatus, newStatus vo.IssueStatus, reason string) (*Event, error) {
	e, err := newEvent(issueID, accountID, role, vo.EventStatusChange)
	if err != nil {
		return nil, err
	}
	e.oldValue = oldStatus.String()
	e.newValue = newStatus.String()
	e.content = reason
	return e, nil
}

// NewDecisionEvent snapshots a financial decision (OWNER_REFUND or
// ADMIN_CREDIT) with the old and new decision statuses and the amount.
func NewDecisionEvent(
	eventType vo.EventType,
	issueID, accountID uint,
	role account.Role,
	oldStatus, newStatus vo.DecisionStatus,
	amount *int64,
	note string,
) (*Event, error) {
	if eventType != vo.EventOwnerRefund && eventType != vo.EventAdminCredit {
		return nil, fmt.Errorf("event type %s is not a decision event", eventType)
	}

	e, err := newEvent(issueID, accountID, role, eventType)
	if err != nil {
		return nil, err
	}
	e.oldValue = oldStatus.String()
	e.newValue = newStatus.String()
	e.amount = amount
	e.content = note
	return e, nil
}

func ReconstructEvent(
	id uint,
	issueID uint,
	accountID uint,
	accountRole account.Role,
	eventType vo.EventType,
	content string,
	oldValue, newValue string,
	amount *int64,
	attachmentURL string,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", eventType)
	}

	return &Event{
		id:            id,
		issueID:       issueID,
		accountID:     accountID,
		accountRole:   accountRole,
		eventType:     eventType,
		content:       content,
		oldValue:      oldValue,
		newValue:      newValue,
		amount:        amount,
		attachmentURL: attachmentURL,
		createdAt:     createdAt,
	}, nil
}

func (e *Event) ID() uint                  { return e.id }
func (e *Event) IssueID() uint             { return e.issueID }
func (e *Event) AccountID() uint           { return e.accountID }
func (e *Event) AccountRole() account.Role { return e.accountRole }
func (e *Event) Type() vo.EventType        { return e.eventType }
func (e *Event) Content() string           { return e.content }
func (e *Event) OldValue() string          { return e.oldValue }
func (e *Event) NewValue() string          { return e.newValue }
func (e *Event) Amount() *int64            { return e.amount }
func (e *Event) AttachmentURL() string     { return e.attachmentURL }
func (e *Event) CreatedAt() time.Time      { return e.createdAt }

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
