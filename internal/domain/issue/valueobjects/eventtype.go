package valueobjects

import (
	"fmt"
	"strings"
)

// EventType classifies one fact on an issue timeline.
type EventType string

const (
	EventNote         EventType = "NOTE"
	EventMessage      EventType = "MESSAGE"
	EventAttachment   EventType = "ATTACHMENT"
	EventStatusChange EventType = "STATUS_CHANGE"
	EventOwnerRefund  EventType = "OWNER_REFUND"
	EventAdminCredit  EventType = "ADMIN_CREDIT"
)

var validEventTypes = map[EventType]bool{
	EventNote:         true,
	EventMessage:      true,
	EventAttachment:   true,
	EventStatusChange: true,
	EventOwnerRefund:  true,
	EventAdminCredit:  true,
}

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	return validEventTypes[e]
}

func NewEventType(s string) (EventType, error) {
	e := EventType(strings.ToUpper(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", s)
	}
	return e, nil
}
