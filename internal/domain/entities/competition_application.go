package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CompetitionResult represents the outcome of an accepted entry
type CompetitionResult string

const (
	ResultWinner       CompetitionResult = "winner"
	ResultRunnerUp     CompetitionResult = "runner-up"
	ResultFinalist     CompetitionResult = "finalist"
	ResultParticipated CompetitionResult = "participated"
)

// ValidResult reports whether the value is one of the known outcomes.
func ValidResult(r CompetitionResult) bool {
	switch r {
	case ResultWinner, ResultRunnerUp, ResultFinalist, ResultParticipated:
		return true
	}
	return false
}

// CompetitionApplication represents a team's entry into a competition.
// Result may only be set once the entry has been accepted.
type CompetitionApplication struct {
	ID            uuid.UUID     `json:"id"`
	CompetitionID uuid.UUID     `json:"competitionId"`
	StudentID     uuid.UUID     `json:"studentId"`
	TeamID        uuid.UUID     `json:"teamId"`
	Motivation    string        `json:"motivation,omitempty"`
	Skills        []string      `json:"skills,omitempty"`
	Status        RequestStatus `json:"status"`
	Result        null.String   `json:"result,omitempty"`
	Analysis      null.String   `json:"analysis,omitempty"`
	ResolvedAt    null.Time     `json:"resolvedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// ApplyToCompetitionInput represents input for entering a competition
type ApplyToCompetitionInput struct {
	TeamID     uuid.UUID `json:"teamId" binding:"required"`
	Motivation string    `json:"motivation"`
	Skills     []string  `json:"skills"`
}

// SetResultInput represents input for recording a competition outcome
type SetResultInput struct {
	Result   CompetitionResult `json:"result" binding:"required"`
	Analysis string            `json:"analysis"`
}
