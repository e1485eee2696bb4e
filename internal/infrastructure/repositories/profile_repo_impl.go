package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/infrastructure/models"
)

type StudentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) *StudentProfileRepository {
	return &StudentProfileRepository{db: db}
}

func (r *StudentProfileRepository) Upsert(ctx context.Context, profile *entities.StudentProfile) error {
	m := &models.StudentProfile{
		ID:     profile.ID,
		UserID: profile.UserID,
		Skills: marshalStrings(profile.Skills),
		Domain: profile.Domain,
		Bio:    profile.Bio,
		Links:  marshalStrings(profile.Links),
		SDGs:   marshalInts(profile.SDGs),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	err := GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"skills", "domain", "bio", "links", "sdgs", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *StudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	var m models.StudentProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return studentProfileToEntity(&m), nil
}

func (r *StudentProfileRepository) List(ctx context.Context, limit, offset int) ([]*entities.StudentProfile, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.StudentProfile{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.StudentProfile
	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.StudentProfile, 0, len(ms))
	for i := range ms {
		items = append(items, studentProfileToEntity(&ms[i]))
	}
	return items, total, nil
}

func studentProfileToEntity(m *models.StudentProfile) *entities.StudentProfile {
	return &entities.StudentProfile{
		ID:        m.ID,
		UserID:    m.UserID,
		Skills:    unmarshalStrings(m.Skills),
		Domain:    m.Domain,
		Bio:       m.Bio,
		Links:     unmarshalStrings(m.Links),
		SDGs:      unmarshalInts(m.SDGs),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type MentorProfileRepository struct {
	db *gorm.DB
}

func NewMentorProfileRepository(db *gorm.DB) *MentorProfileRepository {
	return &MentorProfileRepository{db: db}
}

func (r *MentorProfileRepository) Upsert(ctx context.Context, profile *entities.MentorProfile) error {
	m := &models.MentorProfile{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Expertise:       marshalStrings(profile.Expertise),
		Domain:          profile.Domain,
		Bio:             profile.Bio,
		ExperienceYears: profile.ExperienceYears,
		Links:           marshalStrings(profile.Links),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	err := GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"expertise", "domain", "bio", "experience_years", "links", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	profile.ID = m.ID
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MentorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.MentorProfile, error) {
	var m models.MentorProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return mentorProfileToEntity(&m), nil
}

func (r *MentorProfileRepository) List(ctx context.Context, limit, offset int) ([]*entities.MentorProfile, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.MentorProfile{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.MentorProfile
	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.MentorProfile, 0, len(ms))
	for i := range ms {
		items = append(items, mentorProfileToEntity(&ms[i]))
	}
	return items, total, nil
}

func mentorProfileToEntity(m *models.MentorProfile) *entities.MentorProfile {
	return &entities.MentorProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		Expertise:       unmarshalStrings(m.Expertise),
		Domain:          m.Domain,
		Bio:             m.Bio,
		ExperienceYears: m.ExperienceYears,
		Links:           unmarshalStrings(m.Links),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
