package usecases

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// TeamUsecase handles team lifecycle and roster business logic
type TeamUsecase struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	roster   *RosterManager
	uow      repositories.UnitOfWork
	notifier Notifier
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo: teamRepo,
		userRepo: userRepo,
		roster:   NewRosterManager(teamRepo, userRepo),
		uow:      uow,
		notifier: notifier,
	}
}

// Create registers a new team with the creator as owner and first member.
func (uc *TeamUsecase) Create(ctx context.Context, actor Actor, input *entities.CreateTeamInput) (*entities.Team, error) {
	if !entities.ValidateSDGs(input.SDGs) {
		return nil, domainerrors.BadRequest("sdgs must be between 1 and 17")
	}

	owner, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	team := &entities.Team{
		ID:           uuid.New(),
		Name:         input.Name,
		Project:      input.Project,
		Description:  input.Description,
		OwnerID:      actor.ID,
		SkillsNeeded: input.SkillsNeeded,
		MaxMembers:   input.MaxMembers,
		Deadline:     input.Deadline,
		Status:       entities.TeamRecruiting,
		SDGs:         input.SDGs,
		Members: []entities.TeamMember{
			{
				UserID: actor.ID,
				Name:   owner.Name,
				Role:   "owner",
			},
		},
	}

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return uc.teamRepo.GetByID(ctx, team.ID)
}

// GetByID returns one team with its full roster.
func (uc *TeamUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	return uc.teamRepo.GetByID(ctx, id)
}

// List returns teams filtered by status with pagination.
func (uc *TeamUsecase) List(ctx context.Context, status entities.TeamStatus, limit, offset int) ([]*entities.Team, int64, error) {
	return uc.teamRepo.List(ctx, status, limit, offset)
}

// ListMine returns every team the actor holds a seat on.
func (uc *TeamUsecase) ListMine(ctx context.Context, actor Actor) ([]*entities.Team, error) {
	return uc.teamRepo.ListByMember(ctx, actor.ID)
}

// Update changes team attributes. Shrinking MaxMembers below the current
// roster size is rejected so existing seats are never invalidated.
func (uc *TeamUsecase) Update(ctx context.Context, actor Actor, id uuid.UUID, input *entities.UpdateTeamInput) (*entities.Team, error) {
	team, err := uc.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		team.Name = *input.Name
	}
	if input.Project != nil {
		team.Project = *input.Project
	}
	if input.Description != nil {
		team.Description = *input.Description
	}
	if input.SkillsNeeded != nil {
		team.SkillsNeeded = input.SkillsNeeded
	}
	if input.MaxMembers != nil {
		if *input.MaxMembers < len(team.Members) {
			return nil, domainerrors.BadRequest("maxMembers cannot be below the current roster size")
		}
		team.MaxMembers = *input.MaxMembers
	}
	if input.Deadline != nil {
		team.Deadline = input.Deadline
	}
	if input.Status != nil {
		team.Status = *input.Status
	}

	if err := uc.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return uc.teamRepo.GetByID(ctx, id)
}

// UpdateSDGs replaces the team's sustainable development goal tags.
func (uc *TeamUsecase) UpdateSDGs(ctx context.Context, actor Actor, id uuid.UUID, sdgs []int) (*entities.Team, error) {
	if !entities.ValidateSDGs(sdgs) {
		return nil, domainerrors.BadRequest("sdgs must be between 1 and 17")
	}
	team, err := uc.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	if err := uc.teamRepo.UpdateSDGs(ctx, id, sdgs); err != nil {
		return nil, err
	}
	return uc.teamRepo.GetByID(ctx, id)
}

// Delete soft-deletes the team.
func (uc *TeamUsecase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	team, err := uc.teamRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return err
	}
	return uc.teamRepo.SoftDelete(ctx, id)
}

// AddMember directly seats a user, subject to the shared roster checks.
func (uc *TeamUsecase) AddMember(ctx context.Context, actor Actor, teamID uuid.UUID, input *entities.AddMemberInput) (*entities.Team, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}

	var updated *entities.Team
	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		updated, err = uc.roster.AddMember(ctx, teamID, input.UserID, input.Role)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.NotifyUsers(memberIDs(updated), EventMemberAdded, updated)
	return updated, nil
}

// RemoveMember unseats a user. Members may leave on their own; removing
// someone else requires ownership.
func (uc *TeamUsecase) RemoveMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID) (*entities.Team, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if actor.ID != userID {
		if err := authorizeOwner(actor, team.OwnerID); err != nil {
			return nil, err
		}
	}

	var updated *entities.Team
	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		updated, err = uc.roster.RemoveMember(ctx, teamID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.NotifyUsers(memberIDs(updated), EventMemberRemoved, updated)
	return updated, nil
}

// memberIDs collects the user ids of every seated member.
func memberIDs(team *entities.Team) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(team.Members))
	for _, m := range team.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
