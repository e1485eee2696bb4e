package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(120);not null"`
	Project        string    `gorm:"type:varchar(200)"`
	Description    string    `gorm:"type:text"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SkillsNeeded   string    `gorm:"type:text"`             // JSON string
	MaxMembers     int       `gorm:"not null;default:1"`
	CurrentMembers int       `gorm:"not null;default:1"`
	Deadline       *time.Time
	Status         string `gorm:"type:varchar(20);not null;default:'recruiting';index"`
	SDGs           string `gorm:"column:sdgs;type:text"` // JSON string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_team_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Role     string    `gorm:"type:varchar(80)"`
	JoinedAt time.Time `gorm:"not null"`
}

type TeamMentor struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_team_mentor"`
	MentorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_mentor"`
	AddedAt  time.Time `gorm:"not null"`
}

type TeamOpening struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TeamID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(150);not null"`
	Description    string    `gorm:"type:text"`
	SkillsNeeded   string    `gorm:"type:text"` // JSON string
	SeatsAvailable int       `gorm:"not null"`
	Deadline       *time.Time
	Status         string    `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OpeningApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OpeningID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Message     string    `gorm:"type:text"`
	Skills      string    `gorm:"type:text"` // JSON string
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Invitation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TeamID      uuid.UUID `gorm:"type:uuid;not null;index"`
	InviteeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Message     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MentorApplication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MentorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
