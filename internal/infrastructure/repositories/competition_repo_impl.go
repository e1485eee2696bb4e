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

type CompetitionRepository struct {
	db *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) Create(ctx context.Context, comp *entities.Competition) error {
	m := r.toModel(comp)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comp.ID = m.ID
	comp.CreatedAt = m.CreatedAt
	comp.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Competition, error) {
	var m models.Competition
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CompetitionRepository) List(ctx context.Context, status entities.CompetitionStatus, limit, offset int) ([]*entities.Competition, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Competition{})
	if status != "" {
		db = db.Where("status = ?", string(status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Competition
	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Competition, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, comp *entities.Competition) error {
	updates := map[string]interface{}{
		"name":            comp.Name,
		"category":        comp.Category,
		"description":     comp.Description,
		"date_range":      comp.DateRange,
		"deadline":        comp.Deadline,
		"team_size":       comp.TeamSize,
		"status":          string(comp.Status),
		"prize_pool":      comp.PrizePool,
		"required_skills": marshalStrings(comp.RequiredSkills),
		"sdgs":            marshalInts(comp.SDGs),
		"photo_path":      comp.PhotoPath,
		"updated_at":      time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Competition{}).
		Where("id = ?", comp.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CompetitionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CompetitionStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Competition{}).
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

func (r *CompetitionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Competition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CompetitionRepository) CountByStatus(ctx context.Context) (map[entities.CompetitionStatus]int64, error) {
	rows := []struct {
		Status string
		Count  int64
	}{}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Competition{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entities.CompetitionStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.CompetitionStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *CompetitionRepository) toEntity(m *models.Competition) *entities.Competition {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Competition{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		Description:    m.Description,
		DateRange:      m.DateRange,
		Deadline:       m.Deadline,
		TeamSize:       m.TeamSize,
		Status:         entities.CompetitionStatus(m.Status),
		PrizePool:      m.PrizePool,
		RequiredSkills: unmarshalStrings(m.RequiredSkills),
		SDGs:           unmarshalInts(m.SDGs),
		PhotoPath:      m.PhotoPath,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

func (r *CompetitionRepository) toModel(e *entities.Competition) *models.Competition {
	return &models.Competition{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Description:    e.Description,
		DateRange:      e.DateRange,
		Deadline:       e.Deadline,
		TeamSize:       e.TeamSize,
		Status:         string(e.Status),
		PrizePool:      e.PrizePool,
		RequiredSkills: marshalStrings(e.RequiredSkills),
		SDGs:           marshalInts(e.SDGs),
		PhotoPath:      e.PhotoPath,
		CreatedBy:      e.CreatedBy,
	}
}
