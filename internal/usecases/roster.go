package usecases

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// RosterManager is the single entry point for team membership mutations.
// Direct adds, invitation accepts and opening accepts all go through here,
// so the duplicate and seat checks are enforced identically at every door.
type RosterManager struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
}

func NewRosterManager(teamRepo repositories.TeamRepository, userRepo repositories.UserRepository) *RosterManager {
	return &RosterManager{teamRepo: teamRepo, userRepo: userRepo}
}

// AddMember seats the user on the team. It fails with DuplicateMember if the
// user already holds a seat and with TeamFull when no seats remain. The
// persisted member count is recomputed from the roster, not incremented.
func (rm *RosterManager) AddMember(ctx context.Context, teamID, userID uuid.UUID, role string) (*entities.Team, error) {
	team, err := rm.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.HasMember(userID) {
		return nil, domainerrors.Conflict("user is already on the roster", domainerrors.ErrDuplicateMember)
	}
	if team.IsFull() {
		return nil, domainerrors.Conflict("team has no free seats", domainerrors.ErrTeamFull)
	}

	user, err := rm.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	member := &entities.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Name:   user.Name,
		Role:   role,
	}
	if err := rm.teamRepo.AddMember(ctx, member); err != nil {
		return nil, err
	}
	return rm.teamRepo.GetByID(ctx, teamID)
}

// EnsureMember is the idempotent variant used by invitation acceptance:
// a user who already holds a seat is left in place (set-union semantics).
func (rm *RosterManager) EnsureMember(ctx context.Context, teamID, userID uuid.UUID, role string) (*entities.Team, error) {
	team, err := rm.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.HasMember(userID) {
		return team, nil
	}
	return rm.AddMember(ctx, teamID, userID, role)
}

// RemoveMember unseats the user and recounts.
func (rm *RosterManager) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (*entities.Team, error) {
	team, err := rm.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(userID) {
		return nil, domainerrors.NewAppError(http.StatusNotFound, "user is not on the roster", domainerrors.ErrMemberNotFound)
	}
	if err := rm.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
		return nil, err
	}
	return rm.teamRepo.GetByID(ctx, teamID)
}
