package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// InvitationUsecase handles team-initiated join invitations
type InvitationUsecase struct {
	invRepo  repositories.InvitationRepository
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	roster   *RosterManager
	uow      repositories.UnitOfWork
	notifier Notifier
}

// NewInvitationUsecase creates a new invitation usecase
func NewInvitationUsecase(
	invRepo repositories.InvitationRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *InvitationUsecase {
	return &InvitationUsecase{
		invRepo:  invRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		roster:   NewRosterManager(teamRepo, userRepo),
		uow:      uow,
		notifier: notifier,
	}
}

// Create invites a user onto the team. Inviting a seated member or stacking
// a second pending invitation for the same user is rejected.
func (uc *InvitationUsecase) Create(ctx context.Context, actor Actor, teamID uuid.UUID, input *entities.CreateInvitationInput) (*entities.Invitation, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	if team.HasMember(input.InviteeID) {
		return nil, domainerrors.Conflict("invitee is already on the roster", domainerrors.ErrDuplicateMember)
	}

	// The invitee must exist before we persist anything pointing at them.
	if _, err := uc.userRepo.GetByID(ctx, input.InviteeID); err != nil {
		return nil, err
	}

	existing, err := uc.invRepo.FindPendingByTeamAndInvitee(ctx, teamID, input.InviteeID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("an invitation for this user is already pending", domainerrors.ErrDuplicateApplication)
	}

	inv := &entities.Invitation{
		ID:        uuid.New(),
		TeamID:    teamID,
		InviteeID: input.InviteeID,
		Message:   input.Message,
		Status:    entities.StatusPending,
		CreatedBy: actor.ID,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.notifier.NotifyUser(input.InviteeID, EventInvitation, inv)
	return inv, nil
}

// ListMine returns every invitation addressed to the actor.
func (uc *InvitationUsecase) ListMine(ctx context.Context, actor Actor) ([]*entities.Invitation, error) {
	return uc.invRepo.ListByInvitee(ctx, actor.ID)
}

// ListByTeam returns every invitation sent by the team.
func (uc *InvitationUsecase) ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID) ([]*entities.Invitation, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	return uc.invRepo.ListByTeam(ctx, teamID)
}

// Accept resolves a pending invitation and seats the invitee. Seating uses
// set-union semantics: an invitee who joined through another door in the
// meantime still gets a successful accept without a duplicate roster entry.
func (uc *InvitationUsecase) Accept(ctx context.Context, actor Actor, invitationID uuid.UUID) (*entities.Invitation, error) {
	inv, err := uc.invRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.InviteeID != actor.ID {
		return nil, domainerrors.Forbidden("only the invitee may respond")
	}

	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		fresh, err := uc.invRepo.GetByID(ctx, invitationID)
		if err != nil {
			return err
		}
		if err := fresh.Status.EnsurePending(); err != nil {
			return err
		}
		if _, err := uc.roster.EnsureMember(ctx, fresh.TeamID, fresh.InviteeID, "member"); err != nil {
			return err
		}
		return uc.invRepo.UpdateStatus(ctx, invitationID, entities.StatusAccepted)
	})
	if err != nil {
		return nil, err
	}

	inv, err = uc.invRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	team, err := uc.teamRepo.GetByID(ctx, inv.TeamID)
	if err == nil {
		uc.notifier.NotifyUsers(memberIDs(team), EventMemberAdded, team)
	}
	return inv, nil
}

// Reject resolves a pending invitation without touching the roster.
func (uc *InvitationUsecase) Reject(ctx context.Context, actor Actor, invitationID uuid.UUID) (*entities.Invitation, error) {
	inv, err := uc.invRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.InviteeID != actor.ID {
		return nil, domainerrors.Forbidden("only the invitee may respond")
	}
	if err := inv.Status.EnsurePending(); err != nil {
		return nil, err
	}
	if err := uc.invRepo.UpdateStatus(ctx, invitationID, entities.StatusRejected); err != nil {
		return nil, err
	}
	return uc.invRepo.GetByID(ctx, invitationID)
}

// Withdraw lets the team pull a still-pending invitation.
func (uc *InvitationUsecase) Withdraw(ctx context.Context, actor Actor, invitationID uuid.UUID) (*entities.Invitation, error) {
	inv, err := uc.invRepo.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, inv.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	if err := inv.Status.EnsurePending(); err != nil {
		return nil, err
	}
	if err := uc.invRepo.UpdateStatus(ctx, invitationID, entities.StatusWithdrawn); err != nil {
		return nil, err
	}
	return uc.invRepo.GetByID(ctx, invitationID)
}
