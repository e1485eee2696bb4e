package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents one persisted chat message. For direct messages
// ToID is a user id; for team messages it is the team id and IsTeam is set.
// Messages are append-only; "read" is tracked via ReadBy set membership.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	FromID    uuid.UUID   `json:"fromId"`
	ToID      uuid.UUID   `json:"toId"`
	Text      string      `json:"text"`
	IsTeam    bool        `json:"isTeam"`
	ReadBy    []uuid.UUID `json:"readBy,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SendMessageInput represents input for sending a chat message
type SendMessageInput struct {
	ToID   uuid.UUID `json:"toId" binding:"required"`
	Text   string    `json:"text" binding:"required,max=4000"`
	IsTeam bool      `json:"isTeam"`
}

// MarkReadInput represents input for marking messages as read
type MarkReadInput struct {
	MessageIDs []uuid.UUID `json:"messageIds" binding:"required,min=1"`
}
