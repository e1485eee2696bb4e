package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FromID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ToID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	IsTeam    bool      `gorm:"not null;default:false"`
	ReadBy    string    `gorm:"type:text"` // JSON string
	CreatedAt time.Time `gorm:"index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
