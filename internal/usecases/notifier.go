package usecases

import (
	"github.com/google/uuid"
)

// Notifier pushes fire-and-forget events to connected clients. Absence of a
// connected client is not an error; failures never affect the primary write.
type Notifier interface {
	NotifyUser(userID uuid.UUID, event string, payload interface{})
	NotifyUsers(userIDs []uuid.UUID, event string, payload interface{})
}

// Realtime event names
const (
	EventChatMessage   = "chat:message"
	EventMemberAdded   = "team:member_added"
	EventMemberRemoved = "team:member_removed"
	EventMentorAdded   = "team:mentor_added"
	EventInvitation    = "team:invitation"
	EventApplication   = "team:application"
)

// NopNotifier is used when no realtime layer is attached (tests, CLI tools).
type NopNotifier struct{}

func (NopNotifier) NotifyUser(uuid.UUID, string, interface{})    {}
func (NopNotifier) NotifyUsers([]uuid.UUID, string, interface{}) {}
