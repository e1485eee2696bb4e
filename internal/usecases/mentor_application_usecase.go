package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// MentorApplicationUsecase handles mentors applying to coach teams
type MentorApplicationUsecase struct {
	appRepo        repositories.MentorApplicationRepository
	teamRepo       repositories.TeamRepository
	mentorProfiles repositories.MentorProfileRepository
	uow            repositories.UnitOfWork
	notifier       Notifier
}

// NewMentorApplicationUsecase creates a new mentor application usecase
func NewMentorApplicationUsecase(
	appRepo repositories.MentorApplicationRepository,
	teamRepo repositories.TeamRepository,
	mentorProfiles repositories.MentorProfileRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *MentorApplicationUsecase {
	return &MentorApplicationUsecase{
		appRepo:        appRepo,
		teamRepo:       teamRepo,
		mentorProfiles: mentorProfiles,
		uow:            uow,
		notifier:       notifier,
	}
}

// Apply files a mentor's request to coach the team. Mentors with a pending
// application for the team, or already attached to it, cannot apply again.
func (uc *MentorApplicationUsecase) Apply(ctx context.Context, actor Actor, teamID uuid.UUID, input *entities.ApplyAsMentorInput) (*entities.MentorApplication, error) {
	if actor.Role != entities.UserRoleMentor {
		return nil, domainerrors.Forbidden("only mentors may apply to coach a team")
	}
	if _, err := uc.mentorProfiles.GetByUserID(ctx, actor.ID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("a mentor profile is required before applying")
		}
		return nil, err
	}

	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.HasMentor(actor.ID) {
		return nil, domainerrors.Conflict("mentor is already attached to this team", domainerrors.ErrDuplicateMember)
	}

	existing, err := uc.appRepo.FindPendingByTeamAndMentor(ctx, teamID, actor.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("an application for this team is already pending", domainerrors.ErrDuplicateApplication)
	}

	app := &entities.MentorApplication{
		ID:       uuid.New(),
		MentorID: actor.ID,
		TeamID:   teamID,
		Message:  input.Message,
		Status:   entities.StatusPending,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	uc.notifier.NotifyUser(team.OwnerID, EventApplication, app)
	return app, nil
}

// ListByTeam returns every mentor application for the team. Only the team
// owner sees the list.
func (uc *MentorApplicationUsecase) ListByTeam(ctx context.Context, actor Actor, teamID uuid.UUID) ([]*entities.MentorApplication, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	return uc.appRepo.ListByTeam(ctx, teamID)
}

// ListMine returns the mentor's own applications.
func (uc *MentorApplicationUsecase) ListMine(ctx context.Context, actor Actor) ([]*entities.MentorApplication, error) {
	return uc.appRepo.ListByMentor(ctx, actor.ID)
}

// Accept attaches the mentor to the team and force-rejects every other
// pending application for it, so one accept settles the whole queue. The
// attach and the bulk reject commit atomically. Mentors never consume a
// roster seat; attaching is a set insert, not a seat write.
func (uc *MentorApplicationUsecase) Accept(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.MentorApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, app.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}

	err = uc.uow.Do(ctx, func(ctx context.Context) error {
		fresh, err := uc.appRepo.GetByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := fresh.Status.EnsurePending(); err != nil {
			return err
		}
		if err := uc.appRepo.UpdateStatus(ctx, applicationID, entities.StatusAccepted); err != nil {
			return err
		}
		if _, err := uc.appRepo.RejectOtherPending(ctx, fresh.TeamID, applicationID); err != nil {
			return err
		}
		return uc.teamRepo.AddMentor(ctx, fresh.TeamID, fresh.MentorID)
	})
	if err != nil {
		return nil, err
	}

	app, err = uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	uc.notifier.NotifyUser(app.MentorID, EventMentorAdded, app)
	return app, nil
}

// Reject resolves one pending application without touching the others.
func (uc *MentorApplicationUsecase) Reject(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.MentorApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, app.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	if err := app.Status.EnsurePending(); err != nil {
		return nil, err
	}
	if err := uc.appRepo.UpdateStatus(ctx, applicationID, entities.StatusRejected); err != nil {
		return nil, err
	}
	return uc.appRepo.GetByID(ctx, applicationID)
}

// Withdraw lets the mentor pull a still-pending application.
func (uc *MentorApplicationUsecase) Withdraw(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.MentorApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.MentorID != actor.ID {
		return nil, domainerrors.Forbidden("only the applicant may withdraw")
	}
	if err := app.Status.EnsurePending(); err != nil {
		return nil, err
	}
	if err := uc.appRepo.UpdateStatus(ctx, applicationID, entities.StatusWithdrawn); err != nil {
		return nil, err
	}
	return uc.appRepo.GetByID(ctx, applicationID)
}
