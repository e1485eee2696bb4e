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

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := r.toModel(team)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CurrentMembers = len(team.Members)
	if err := db.Create(m).Error; err != nil {
		return err
	}
	for i := range team.Members {
		member := &team.Members[i]
		member.TeamID = m.ID
		if member.ID == uuid.Nil {
			member.ID = uuid.New()
		}
		if member.JoinedAt.IsZero() {
			member.JoinedAt = time.Now()
		}
		row := &models.TeamMember{
			ID:       member.ID,
			TeamID:   member.TeamID,
			UserID:   member.UserID,
			Name:     member.Name,
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
		}
		if err := db.Create(row).Error; err != nil {
			return err
		}
	}
	team.ID = m.ID
	team.CurrentMembers = m.CurrentMembers
	team.CreatedAt = m.CreatedAt
	team.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Team
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.loadEntity(db, &m)
}

func (r *TeamRepository) List(ctx context.Context, status entities.TeamStatus, limit, offset int) ([]*entities.Team, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	query := db.Model(&models.Team{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Team
	listQuery := query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		listQuery = listQuery.Limit(limit)
	}
	if err := listQuery.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		team, err := r.loadEntity(db, &ms[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, team)
	}
	return items, total, nil
}

func (r *TeamRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var rows []models.TeamMember
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(rows))
	for _, row := range rows {
		var m models.Team
		if err := db.Where("id = ?", row.TeamID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // team deleted, stale roster row
			}
			return nil, err
		}
		team, err := r.loadEntity(db, &m)
		if err != nil {
			return nil, err
		}
		items = append(items, team)
	}
	return items, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	updates := map[string]interface{}{
		"name":          team.Name,
		"project":       team.Project,
		"description":   team.Description,
		"skills_needed": marshalStrings(team.SkillsNeeded),
		"max_members":   team.MaxMembers,
		"deadline":      team.Deadline,
		"status":        string(team.Status),
		"updated_at":    time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", team.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) UpdateSDGs(ctx context.Context, id uuid.UUID, sdgs []int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"sdgs": marshalInts(sdgs), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) AddMember(ctx context.Context, member *entities.TeamMember) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	row := &models.TeamMember{
		ID:       member.ID,
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		Name:     member.Name,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
	if err := db.Create(row).Error; err != nil {
		return err
	}
	return r.recount(db, member.TeamID)
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMemberNotFound
	}
	return r.recount(db, teamID)
}

func (r *TeamRepository) AddMentor(ctx context.Context, teamID, mentorID uuid.UUID) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var count int64
	if err := db.Model(&models.TeamMentor{}).
		Where("team_id = ? AND mentor_id = ?", teamID, mentorID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // set semantics
	}
	return db.Create(&models.TeamMentor{
		ID:       uuid.New(),
		TeamID:   teamID,
		MentorID: mentorID,
		AddedAt:  time.Now(),
	}).Error
}

func (r *TeamRepository) RecountMembers(ctx context.Context, teamID uuid.UUID) error {
	return r.recount(GetDB(ctx, r.db).WithContext(ctx), teamID)
}

// recount writes the authoritative member count, self-healing any drift
// between current_members and the roster table.
func (r *TeamRepository) recount(db *gorm.DB, teamID uuid.UUID) error {
	var count int64
	if err := db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return err
	}
	return db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{"current_members": count, "updated_at": time.Now()}).Error
}

func (r *TeamRepository) CountByStatus(ctx context.Context) (map[entities.TeamStatus]int64, error) {
	rows := []struct {
		Status string
		Count  int64
	}{}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[entities.TeamStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.TeamStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *TeamRepository) SDGDistribution(ctx context.Context) (map[int]int64, error) {
	var raws []string
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Team{}).
		Where("sdgs <> ''").
		Pluck("sdgs", &raws).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]int64)
	for _, raw := range raws {
		for _, sdg := range unmarshalInts(raw) {
			out[sdg]++
		}
	}
	return out, nil
}

func (r *TeamRepository) loadEntity(db *gorm.DB, m *models.Team) (*entities.Team, error) {
	var memberRows []models.TeamMember
	if err := db.Where("team_id = ?", m.ID).Order("joined_at ASC").Find(&memberRows).Error; err != nil {
		return nil, err
	}
	var mentorRows []models.TeamMentor
	if err := db.Where("team_id = ?", m.ID).Order("added_at ASC").Find(&mentorRows).Error; err != nil {
		return nil, err
	}

	members := make([]entities.TeamMember, 0, len(memberRows))
	for _, row := range memberRows {
		members = append(members, entities.TeamMember{
			ID:       row.ID,
			TeamID:   row.TeamID,
			UserID:   row.UserID,
			Name:     row.Name,
			Role:     row.Role,
			JoinedAt: row.JoinedAt,
		})
	}
	mentorIDs := make([]uuid.UUID, 0, len(mentorRows))
	for _, row := range mentorRows {
		mentorIDs = append(mentorIDs, row.MentorID)
	}

	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &entities.Team{
		ID:             m.ID,
		Name:           m.Name,
		Project:        m.Project,
		Description:    m.Description,
		OwnerID:        m.OwnerID,
		Members:        members,
		MentorIDs:      mentorIDs,
		SkillsNeeded:   unmarshalStrings(m.SkillsNeeded),
		MaxMembers:     m.MaxMembers,
		CurrentMembers: m.CurrentMembers,
		Deadline:       m.Deadline,
		Status:         entities.TeamStatus(m.Status),
		SDGs:           unmarshalInts(m.SDGs),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}, nil
}

func (r *TeamRepository) toModel(e *entities.Team) *models.Team {
	return &models.Team{
		ID:           e.ID,
		Name:         e.Name,
		Project:      e.Project,
		Description:  e.Description,
		OwnerID:      e.OwnerID,
		SkillsNeeded: marshalStrings(e.SkillsNeeded),
		MaxMembers:   e.MaxMembers,
		Deadline:     e.Deadline,
		Status:       string(e.Status),
		SDGs:         marshalInts(e.SDGs),
	}
}
