package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/infrastructure/models"
)

type MentorApplicationRepository struct {
	db *gorm.DB
}

func NewMentorApplicationRepository(db *gorm.DB) *MentorApplicationRepository {
	return &MentorApplicationRepository{db: db}
}

func (r *MentorApplicationRepository) Create(ctx context.Context, app *entities.MentorApplication) error {
	m := &models.MentorApplication{
		ID:       app.ID,
		MentorID: app.MentorID,
		TeamID:   app.TeamID,
		Message:  app.Message,
		Status:   string(app.Status),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	app.ID = m.ID
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MentorApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorApplication, error) {
	var m models.MentorApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return mentorApplicationToEntity(&m), nil
}

func (r *MentorApplicationRepository) FindPendingByTeamAndMentor(ctx context.Context, teamID, mentorID uuid.UUID) (*entities.MentorApplication, error) {
	var m models.MentorApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ? AND mentor_id = ? AND status = ?", teamID, mentorID, string(entities.StatusPending)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return mentorApplicationToEntity(&m), nil
}

func (r *MentorApplicationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.MentorApplication, error) {
	var ms []models.MentorApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.MentorApplication, 0, len(ms))
	for i := range ms {
		items = append(items, mentorApplicationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *MentorApplicationRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorApplication, error) {
	var ms []models.MentorApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.MentorApplication, 0, len(ms))
	for i := range ms {
		items = append(items, mentorApplicationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *MentorApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.MentorApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MentorApplicationRepository) RejectOtherPending(ctx context.Context, teamID, acceptedID uuid.UUID) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.MentorApplication{}).
		Where("team_id = ? AND id <> ? AND status = ?", teamID, acceptedID, string(entities.StatusPending)).
		Updates(map[string]interface{}{"status": string(entities.StatusRejected), "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

func mentorApplicationToEntity(m *models.MentorApplication) *entities.MentorApplication {
	return &entities.MentorApplication{
		ID:        m.ID,
		MentorID:  m.MentorID,
		TeamID:    m.TeamID,
		Message:   m.Message,
		Status:    entities.RequestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
