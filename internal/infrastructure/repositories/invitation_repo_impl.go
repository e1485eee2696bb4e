package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/infrastructure/models"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *entities.Invitation) error {
	m := &models.Invitation{
		ID:        inv.ID,
		TeamID:    inv.TeamID,
		InviteeID: inv.InviteeID,
		Message:   inv.Message,
		Status:    string(inv.Status),
		CreatedBy: inv.CreatedBy,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	inv.ID = m.ID
	inv.CreatedAt = m.CreatedAt
	inv.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	var m models.Invitation
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return invitationToEntity(&m), nil
}

func (r *InvitationRepository) FindPendingByTeamAndInvitee(ctx context.Context, teamID, inviteeID uuid.UUID) (*entities.Invitation, error) {
	var m models.Invitation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND invitee_id = ? AND status = ?", teamID, inviteeID, string(entities.StatusPending)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return invitationToEntity(&m), nil
}

func (r *InvitationRepository) ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*entities.Invitation, error) {
	var ms []models.Invitation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("invitee_id = ?", inviteeID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Invitation, 0, len(ms))
	for i := range ms {
		items = append(items, invitationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *InvitationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Invitation, error) {
	var ms []models.Invitation
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Invitation, 0, len(ms))
	for i := range ms {
		items = append(items, invitationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Invitation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       string(status),
			"responded_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func invitationToEntity(m *models.Invitation) *entities.Invitation {
	return &entities.Invitation{
		ID:          m.ID,
		TeamID:      m.TeamID,
		InviteeID:   m.InviteeID,
		Message:     m.Message,
		Status:      entities.RequestStatus(m.Status),
		CreatedBy:   m.CreatedBy,
		RespondedAt: null.TimeFromPtr(m.RespondedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
