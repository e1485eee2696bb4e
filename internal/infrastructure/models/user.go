package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'STUDENT'"`
	AvatarPath   string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type StudentProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Skills    string    `gorm:"type:text"` // JSON string
	Domain    string    `gorm:"type:varchar(120)"`
	Bio       string    `gorm:"type:text"`
	Links     string    `gorm:"type:text"` // JSON string
	SDGs      string    `gorm:"column:sdgs;type:text"` // JSON string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MentorProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Expertise       string    `gorm:"type:text"` // JSON string
	Domain          string    `gorm:"type:varchar(120)"`
	Bio             string    `gorm:"type:text"`
	ExperienceYears int       `gorm:"not null;default:0"`
	Links           string    `gorm:"type:text"` // JSON string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
