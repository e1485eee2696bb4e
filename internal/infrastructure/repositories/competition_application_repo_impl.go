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

type CompetitionApplicationRepository struct {
	db *gorm.DB
}

func NewCompetitionApplicationRepository(db *gorm.DB) *CompetitionApplicationRepository {
	return &CompetitionApplicationRepository{db: db}
}

func (r *CompetitionApplicationRepository) Create(ctx context.Context, app *entities.CompetitionApplication) error {
	m := r.toModel(app)
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

func (r *CompetitionApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionApplication, error) {
	var m models.CompetitionApplication
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CompetitionApplicationRepository) FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID uuid.UUID) (*entities.CompetitionApplication, error) {
	var m models.CompetitionApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("competition_id = ? AND team_id = ?", competitionID, teamID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CompetitionApplicationRepository) ListByCompetition(ctx context.Context, competitionID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	var ms []models.CompetitionApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("competition_id = ?", competitionID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *CompetitionApplicationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	var ms []models.CompetitionApplication
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *CompetitionApplicationRepository) Update(ctx context.Context, app *entities.CompetitionApplication) error {
	updates := map[string]interface{}{
		"status":     string(app.Status),
		"updated_at": time.Now(),
	}
	if app.Result.Valid {
		updates["result"] = app.Result.String
	}
	if app.Analysis.Valid {
		updates["analysis"] = app.Analysis.String
	}
	if app.ResolvedAt.Valid {
		updates["resolved_at"] = app.ResolvedAt.Time
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.CompetitionApplication{}).
		Where("id = ?", app.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CompetitionApplicationRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int64, error) {
	rows := []struct {
		Status string
		Count  int64
	}{}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.CompetitionApplication{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entities.RequestStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.RequestStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *CompetitionApplicationRepository) toEntities(ms []models.CompetitionApplication) []*entities.CompetitionApplication {
	items := make([]*entities.CompetitionApplication, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *CompetitionApplicationRepository) toEntity(m *models.CompetitionApplication) *entities.CompetitionApplication {
	return &entities.CompetitionApplication{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		StudentID:     m.StudentID,
		TeamID:        m.TeamID,
		Motivation:    m.Motivation,
		Skills:        unmarshalStrings(m.Skills),
		Status:        entities.RequestStatus(m.Status),
		Result:        null.StringFromPtr(m.Result),
		Analysis:      null.StringFromPtr(m.Analysis),
		ResolvedAt:    null.TimeFromPtr(m.ResolvedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *CompetitionApplicationRepository) toModel(e *entities.CompetitionApplication) *models.CompetitionApplication {
	return &models.CompetitionApplication{
		ID:            e.ID,
		CompetitionID: e.CompetitionID,
		StudentID:     e.StudentID,
		TeamID:        e.TeamID,
		Motivation:    e.Motivation,
		Skills:        marshalStrings(e.Skills),
		Status:        string(e.Status),
		Result:        e.Result.Ptr(),
		Analysis:      e.Analysis.Ptr(),
		ResolvedAt:    e.ResolvedAt.Ptr(),
	}
}
