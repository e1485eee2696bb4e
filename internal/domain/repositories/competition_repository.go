package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
)

type CompetitionRepository interface {
	Create(ctx context.Context, comp *entities.Competition) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Competition, error)
	List(ctx context.Context, status entities.CompetitionStatus, limit, offset int) ([]*entities.Competition, int64, error)
	Update(ctx context.Context, comp *entities.Competition) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CompetitionStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[entities.CompetitionStatus]int64, error)
}

type CompetitionApplicationRepository interface {
	Create(ctx context.Context, app *entities.CompetitionApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionApplication, error)
	FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID uuid.UUID) (*entities.CompetitionApplication, error)
	ListByCompetition(ctx context.Context, competitionID uuid.UUID) ([]*entities.CompetitionApplication, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.CompetitionApplication, error)
	Update(ctx context.Context, app *entities.CompetitionApplication) error
	CountByStatus(ctx context.Context) (map[entities.RequestStatus]int64, error)
}
