package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Competition struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(200);not null"`
	Category       string    `gorm:"type:varchar(120);not null"`
	Description    string    `gorm:"type:text"`
	DateRange      string    `gorm:"type:varchar(50);not null"`
	Deadline       *time.Time
	TeamSize       string `gorm:"type:varchar(50)"`
	Status         string `gorm:"type:varchar(20);not null;index"`
	PrizePool      string `gorm:"type:varchar(120)"`
	RequiredSkills string `gorm:"type:text"`             // JSON string
	SDGs           string `gorm:"column:sdgs;type:text"` // JSON string
	PhotoPath      string `gorm:"type:text"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type CompetitionApplication struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CompetitionID uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID     uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Motivation    string    `gorm:"type:text"`
	Skills        string    `gorm:"type:text"` // JSON string
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Result        *string   `gorm:"type:varchar(30)"`
	Analysis      *string   `gorm:"type:text"`
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
