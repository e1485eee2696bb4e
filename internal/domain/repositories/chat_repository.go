package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *entities.ChatMessage) error
	// ListConversation returns direct messages between two users, oldest first.
	ListConversation(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error)
	// ListTeam returns messages addressed to a team, oldest first.
	ListTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error)
	// MarkRead adds the reader to the read-by set of each message; ids the
	// reader already marked are skipped.
	MarkRead(ctx context.Context, readerID uuid.UUID, messageIDs []uuid.UUID) error
}
