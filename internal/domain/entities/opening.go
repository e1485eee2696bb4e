package entities

import (
	"time"

	"github.com/google/uuid"
)

// OpeningStatus represents whether an opening accepts applications
type OpeningStatus string

const (
	OpeningOpen   OpeningStatus = "open"
	OpeningClosed OpeningStatus = "closed"
)

// TeamOpening represents a published vacancy on a team
type TeamOpening struct {
	ID             uuid.UUID     `json:"id"`
	TeamID         uuid.UUID     `json:"teamId"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	SkillsNeeded   []string      `json:"skillsNeeded,omitempty"`
	SeatsAvailable int           `json:"seatsAvailable"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	Status         OpeningStatus `json:"status"`
	CreatedBy      uuid.UUID     `json:"createdBy"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// OpeningApplication represents a student's request to fill an opening
type OpeningApplication struct {
	ID          uuid.UUID     `json:"id"`
	OpeningID   uuid.UUID     `json:"openingId"`
	ApplicantID uuid.UUID     `json:"applicantId"`
	Message     string        `json:"message,omitempty"`
	Skills      []string      `json:"skills,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateOpeningInput represents input for publishing an opening
type CreateOpeningInput struct {
	Title          string     `json:"title" binding:"required,min=2,max=150"`
	Description    string     `json:"description"`
	SkillsNeeded   []string   `json:"skillsNeeded"`
	SeatsAvailable int        `json:"seatsAvailable" binding:"required,min=1"`
	Deadline       *time.Time `json:"deadline"`
}

// UpdateOpeningInput represents input for updating an opening
type UpdateOpeningInput struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	SkillsNeeded   []string       `json:"skillsNeeded"`
	SeatsAvailable *int           `json:"seatsAvailable"`
	Deadline       *time.Time     `json:"deadline"`
	Status         *OpeningStatus `json:"status"`
}

// ApplyToOpeningInput represents input for applying to an opening
type ApplyToOpeningInput struct {
	Message string   `json:"message"`
	Skills  []string `json:"skills"`
}
