package entities

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus represents the team's recruiting state
type TeamStatus string

const (
	TeamRecruiting TeamStatus = "recruiting"
	TeamActive     TeamStatus = "active"
	TeamCompleted  TeamStatus = "completed"
)

// TeamMember is one roster entry. JoinedAt is set when the member is added,
// regardless of which entry point (direct add, invitation, opening) added it.
type TeamMember struct {
	ID       uuid.UUID `json:"id"`
	TeamID   uuid.UUID `json:"teamId"`
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Role     string    `json:"role,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Team represents a student team
type Team struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Project        string       `json:"project,omitempty"`
	Description    string       `json:"description,omitempty"`
	OwnerID        uuid.UUID    `json:"ownerId"`
	Members        []TeamMember `json:"members"`
	MentorIDs      []uuid.UUID  `json:"mentorIds"`
	SkillsNeeded   []string     `json:"skillsNeeded,omitempty"`
	MaxMembers     int          `json:"maxMembers"`
	CurrentMembers int          `json:"currentMembers"`
	Deadline       *time.Time   `json:"deadline,omitempty"`
	Status         TeamStatus   `json:"status"`
	SDGs           []int        `json:"sdgs,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	DeletedAt      *time.Time   `json:"-"`
}

// HasMember reports whether the user already holds a roster seat. All
// comparisons use the canonical internal uuid, never an external auth id.
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// HasMentor reports whether the mentor is already attached to the team.
func (t *Team) HasMentor(mentorID uuid.UUID) bool {
	for _, id := range t.MentorIDs {
		if id == mentorID {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has no free seats. Mentors do not
// occupy seats.
func (t *Team) IsFull() bool {
	return len(t.Members) >= t.MaxMembers
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name         string     `json:"name" binding:"required,min=2,max=120"`
	Project      string     `json:"project"`
	Description  string     `json:"description"`
	SkillsNeeded []string   `json:"skillsNeeded"`
	MaxMembers   int        `json:"maxMembers" binding:"required,min=1"`
	Deadline     *time.Time `json:"deadline"`
	SDGs         []int      `json:"sdgs"`
}

// UpdateTeamInput represents input for updating team attributes
type UpdateTeamInput struct {
	Name         *string     `json:"name"`
	Project      *string     `json:"project"`
	Description  *string     `json:"description"`
	SkillsNeeded []string    `json:"skillsNeeded"`
	MaxMembers   *int        `json:"maxMembers"`
	Deadline     *time.Time  `json:"deadline"`
	Status       *TeamStatus `json:"status"`
}

// AddMemberInput represents input for directly adding a member
type AddMemberInput struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Role   string    `json:"role"`
}
