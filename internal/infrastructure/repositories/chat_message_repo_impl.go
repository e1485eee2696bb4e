package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"team-mentorship.backend/internal/domain/entities"
	"team-mentorship.backend/internal/infrastructure/models"
)

type ChatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

func (r *ChatMessageRepository) Create(ctx context.Context, msg *entities.ChatMessage) error {
	m := &models.ChatMessage{
		ID:     msg.ID,
		FromID: msg.FromID,
		ToID:   msg.ToID,
		Text:   msg.Text,
		IsTeam: msg.IsTeam,
		ReadBy: marshalUUIDs(msg.ReadBy),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.ID = m.ID
	msg.CreatedAt = m.CreatedAt
	return nil
}

func (r *ChatMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	var ms []models.ChatMessage
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_team = ?", false).
		Where("(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ChatMessageRepository) ListTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	var ms []models.ChatMessage
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_team = ? AND to_id = ?", true, teamID).
		Order("created_at ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *ChatMessageRepository) MarkRead(ctx context.Context, readerID uuid.UUID, messageIDs []uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var ms []models.ChatMessage
	if err := db.Where("id IN ?", messageIDs).Find(&ms).Error; err != nil {
		return err
	}
	for i := range ms {
		readBy := unmarshalUUIDs(ms[i].ReadBy)
		seen := false
		for _, id := range readBy {
			if id == readerID {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		readBy = append(readBy, readerID)
		err := db.Model(&models.ChatMessage{}).
			Where("id = ?", ms[i].ID).
			Update("read_by", marshalUUIDs(readBy)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ChatMessageRepository) toEntities(ms []models.ChatMessage) []*entities.ChatMessage {
	items := make([]*entities.ChatMessage, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.ChatMessage{
			ID:        ms[i].ID,
			FromID:    ms[i].FromID,
			ToID:      ms[i].ToID,
			Text:      ms[i].Text,
			IsTeam:    ms[i].IsTeam,
			ReadBy:    unmarshalUUIDs(ms[i].ReadBy),
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return items
}
