package usecases

import (
	"context"

	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// DashboardUsecase assembles the admin analytics snapshot
type DashboardUsecase struct {
	userRepo repositories.UserRepository
	teamRepo repositories.TeamRepository
	compRepo repositories.CompetitionRepository
	appRepo  repositories.CompetitionApplicationRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	compRepo repositories.CompetitionRepository,
	appRepo repositories.CompetitionApplicationRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo: userRepo,
		teamRepo: teamRepo,
		compRepo: compRepo,
		appRepo:  appRepo,
	}
}

// Stats aggregates platform-wide counts. Admin only.
func (uc *DashboardUsecase) Stats(ctx context.Context, actor Actor) (*entities.DashboardStats, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may view the dashboard")
	}

	stats := &entities.DashboardStats{}

	var err error
	if stats.TotalUsers, err = uc.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = uc.userRepo.CountByRole(ctx, entities.UserRoleStudent); err != nil {
		return nil, err
	}
	if stats.TotalMentors, err = uc.userRepo.CountByRole(ctx, entities.UserRoleMentor); err != nil {
		return nil, err
	}

	if stats.TeamsByStatus, err = uc.teamRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	for _, n := range stats.TeamsByStatus {
		stats.TotalTeams += n
	}

	if stats.CompetitionsByState, err = uc.compRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	for _, n := range stats.CompetitionsByState {
		stats.TotalCompetitions += n
	}

	if stats.ApplicationsByState, err = uc.appRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.SDGDistribution, err = uc.teamRepo.SDGDistribution(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}
