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

type TeamOpeningRepository struct {
	db *gorm.DB
}

func NewTeamOpeningRepository(db *gorm.DB) *TeamOpeningRepository {
	return &TeamOpeningRepository{db: db}
}

func (r *TeamOpeningRepository) Create(ctx context.Context, opening *entities.TeamOpening) error {
	m := r.toModel(opening)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	opening.ID = m.ID
	opening.CreatedAt = m.CreatedAt
	opening.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamOpeningRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamOpening, error) {
	var m models.TeamOpening
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamOpeningRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamOpening, error) {
	var ms []models.TeamOpening
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.TeamOpening, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamOpeningRepository) ListOpen(ctx context.Context, limit, offset int) ([]*entities.TeamOpening, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TeamOpening{}).
		Where("status = ?", string(entities.OpeningOpen))

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.TeamOpening
	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.TeamOpening, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *TeamOpeningRepository) Update(ctx context.Context, opening *entities.TeamOpening) error {
	updates := map[string]interface{}{
		"title":           opening.Title,
		"description":     opening.Description,
		"skills_needed":   marshalStrings(opening.SkillsNeeded),
		"seats_available": opening.SeatsAvailable,
		"deadline":        opening.Deadline,
		"status":          string(opening.Status),
		"updated_at":      time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TeamOpening{}).
		Where("id = ?", opening.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamOpeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.TeamOpening{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamOpeningRepository) toEntity(m *models.TeamOpening) *entities.TeamOpening {
	return &entities.TeamOpening{
		ID:             m.ID,
		TeamID:         m.TeamID,
		Title:          m.Title,
		Description:    m.Description,
		SkillsNeeded:   unmarshalStrings(m.SkillsNeeded),
		SeatsAvailable: m.SeatsAvailable,
		Deadline:       m.Deadline,
		Status:         entities.OpeningStatus(m.Status),
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *TeamOpeningRepository) toModel(e *entities.TeamOpening) *models.TeamOpening {
	return &models.TeamOpening{
		ID:             e.ID,
		TeamID:         e.TeamID,
		Title:          e.Title,
		Description:    e.Description,
		SkillsNeeded:   marshalStrings(e.SkillsNeeded),
		SeatsAvailable: e.SeatsAvailable,
		Deadline:       e.Deadline,
		Status:         string(e.Status),
		CreatedBy:      e.CreatedBy,
	}
}

type OpeningApplicationRepository struct {
	db *gorm.DB
}

func NewOpeningApplicationRepository(db *gorm.DB) *OpeningApplicationRepository {
	return &OpeningApplicationRepository{db: db}
}

func (r *OpeningApplicationRepository) Create(ctx context.Context, app *entities.OpeningApplication) error {
	m := &models.OpeningApplication{
		ID:          app.ID,
		OpeningID:   app.OpeningID,
		ApplicantID: app.ApplicantID,
		Message:     app.Message,
		Skills:      marshalStrings(app.Skills),
		Status:      string(app.Status),
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

func (r *OpeningApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.OpeningApplication, error) {
	var m models.OpeningApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return openingApplicationToEntity(&m), nil
}

func (r *OpeningApplicationRepository) FindByOpeningAndApplicant(ctx context.Context, openingID, applicantID uuid.UUID) (*entities.OpeningApplication, error) {
	var m models.OpeningApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("opening_id = ? AND applicant_id = ?", openingID, applicantID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return openingApplicationToEntity(&m), nil
}

func (r *OpeningApplicationRepository) ListByOpening(ctx context.Context, openingID uuid.UUID) ([]*entities.OpeningApplication, error) {
	var ms []models.OpeningApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("opening_id = ?", openingID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.OpeningApplication, 0, len(ms))
	for i := range ms {
		items = append(items, openingApplicationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *OpeningApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entities.OpeningApplication, error) {
	var ms []models.OpeningApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.OpeningApplication, 0, len(ms))
	for i := range ms {
		items = append(items, openingApplicationToEntity(&ms[i]))
	}
	return items, nil
}

func (r *OpeningApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.OpeningApplication{}).
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

func openingApplicationToEntity(m *models.OpeningApplication) *entities.OpeningApplication {
	return &entities.OpeningApplication{
		ID:          m.ID,
		OpeningID:   m.OpeningID,
		ApplicantID: m.ApplicantID,
		Message:     m.Message,
		Skills:      unmarshalStrings(m.Skills),
		Status:      entities.RequestStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
