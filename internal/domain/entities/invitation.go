package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Invitation represents a team-initiated request for a user to join
type Invitation struct {
	ID          uuid.UUID     `json:"id"`
	TeamID      uuid.UUID     `json:"teamId"`
	InviteeID   uuid.UUID     `json:"inviteeId"`
	Message     string        `json:"message,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedBy   uuid.UUID     `json:"createdBy"`
	RespondedAt null.Time     `json:"respondedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// MentorApplication represents a mentor's request to join a team as mentor
type MentorApplication struct {
	ID        uuid.UUID     `json:"id"`
	MentorID  uuid.UUID     `json:"mentorId"`
	TeamID    uuid.UUID     `json:"teamId"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateInvitationInput represents input for inviting a user to a team
type CreateInvitationInput struct {
	InviteeID uuid.UUID `json:"inviteeId" binding:"required"`
	Message   string    `json:"message"`
}

// ApplyAsMentorInput represents input for a mentor applying to a team
type ApplyAsMentorInput struct {
	Message string `json:"message"`
}
