package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// OpeningUsecase handles published vacancies and their applications
type OpeningUsecase struct {
	openingRepo repositories.TeamOpeningRepository
	appRepo     repositories.OpeningApplicationRepository
	teamRepo    repositories.TeamRepository
	roster      *RosterManager
	uow         repositories.UnitOfWork
	notifier    Notifier
}

// NewOpeningUsecase creates a new opening usecase
func NewOpeningUsecase(
	openingRepo repositories.TeamOpeningRepository,
	appRepo repositories.OpeningApplicationRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *OpeningUsecase {
	return &OpeningUsecase{
		openingRepo: openingRepo,
		appRepo:     appRepo,
		teamRepo:    teamRepo,
		roster:      NewRosterManager(teamRepo, userRepo),
		uow:         uow,
		notifier:    notifier,
	}
}

// Create publishes a vacancy on the team. Only the team owner may publish.
func (uc *OpeningUsecase) Create(ctx context.Context, actor Actor, teamID uuid.UUID, input *entities.CreateOpeningInput) (*entities.TeamOpening, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}

	opening := &entities.TeamOpening{
		ID:             uuid.New(),
		TeamID:         teamID,
		Title:          input.Title,
		Description:    input.Description,
		SkillsNeeded:   input.SkillsNeeded,
		SeatsAvailable: input.SeatsAvailable,
		Deadline:       input.Deadline,
		Status:         entities.OpeningOpen,
		CreatedBy:      actor.ID,
	}
	if err := uc.openingRepo.Create(ctx, opening); err != nil {
		return nil, err
	}
	return opening, nil
}

// GetByID returns one opening.
func (uc *OpeningUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamOpening, error) {
	return uc.openingRepo.GetByID(ctx, id)
}

// ListByTeam returns every opening published by the team.
func (uc *OpeningUsecase) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamOpening, error) {
	return uc.openingRepo.ListByTeam(ctx, teamID)
}

// ListOpen returns open vacancies across all teams with pagination.
func (uc *OpeningUsecase) ListOpen(ctx context.Context, limit, offset int) ([]*entities.TeamOpening, int64, error) {
	return uc.openingRepo.ListOpen(ctx, limit, offset)
}

// Update changes opening attributes.
func (uc *OpeningUsecase) Update(ctx context.Context, actor Actor, id uuid.UUID, input *entities.UpdateOpeningInput) (*entities.TeamOpening, error) {
	opening, err := uc.openingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		opening.Title = *input.Title
	}
	if input.Description != nil {
		opening.Description = *input.Description
	}
	if input.SkillsNeeded != nil {
		opening.SkillsNeeded = input.SkillsNeeded
	}
	if input.SeatsAvailable != nil {
		if *input.SeatsAvailable < 0 {
			return nil, domainerrors.BadRequest("seatsAvailable cannot be negative")
		}
		opening.SeatsAvailable = *input.SeatsAvailable
	}
	if input.Deadline != nil {
		opening.Deadline = input.Deadline
	}
	if input.Status != nil {
		opening.Status = *input.Status
	}

	if err := uc.openingRepo.Update(ctx, opening); err != nil {
		return nil, err
	}
	return opening, nil
}

// Delete removes an opening.
func (uc *OpeningUsecase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	opening, err := uc.openingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return err
	}
	return uc.openingRepo.Delete(ctx, id)
}

// Apply files an application for the opening. Duplicate applications by the
// same applicant and applications from existing members are rejected.
func (uc *OpeningUsecase) Apply(ctx context.Context, actor Actor, openingID uuid.UUID, input *entities.ApplyToOpeningInput) (*entities.OpeningApplication, error) {
	opening, err := uc.openingRepo.GetByID(ctx, openingID)
	if err != nil {
		return nil, err
	}
	if opening.Status != entities.OpeningOpen {
		return nil, domainerrors.NewAppError(http.StatusBadRequest, "opening is no longer accepting applications", domainerrors.ErrOpeningClosed)
	}

	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
	if err != nil {
		return nil, err
	}
	if team.HasMember(actor.ID) {
		return nil, domainerrors.Conflict("applicant is already on the roster", domainerrors.ErrDuplicateMember)
	}
	if team.IsFull() {
		return nil, domainerrors.Conflict("team has no free seats", domainerrors.ErrTeamFull)
	}

	existing, err := uc.appRepo.FindByOpeningAndApplicant(ctx, openingID, actor.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && !existing.Status.IsTerminal() {
		return nil, domainerrors.Conflict("an application for this opening is already pending", domainerrors.ErrDuplicateApplication)
	}

	app := &entities.OpeningApplication{
		ID:          uuid.New(),
		OpeningID:   openingID,
		ApplicantID: actor.ID,
		Message:     input.Message,
		Skills:      input.Skills,
		Status:      entities.StatusPending,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	uc.notifier.NotifyUser(team.OwnerID, EventApplication, app)
	return app, nil
}

// ListApplications returns every application for the opening. Only the team
// owner sees the full list.
func (uc *OpeningUsecase) ListApplications(ctx context.Context, actor Actor, openingID uuid.UUID) ([]*entities.OpeningApplication, error) {
	opening, err := uc.openingRepo.GetByID(ctx, openingID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actor, team.OwnerID); err != nil {
		return nil, err
	}
	return uc.appRepo.ListByOpening(ctx, openingID)
}

// ListMyApplications returns the actor's own opening applications.
func (uc *OpeningUsecase) ListMyApplications(ctx context.Context, actor Actor) ([]*entities.OpeningApplication, error) {
	return uc.appRepo.ListByApplicant(ctx, actor.ID)
}

// Accept resolves a pending application, seats the applicant and burns one
// advertised seat. Both capacity checks, the roster write, the status write
// and the seat decrement commit atomically; reaching zero seats closes the
// opening. A closed or exhausted opening rejects the accept even when the
// team itself still has room, so pending applications can never overcommit
// the advertised seat count.
func (uc *OpeningUsecase) Accept(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.OpeningApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	opening, err := uc.openingRepo.GetByID(ctx, app.OpeningID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
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

		cur, err := uc.openingRepo.GetByID(ctx, app.OpeningID)
		if err != nil {
			return err
		}
		if cur.Status != entities.OpeningOpen || cur.SeatsAvailable <= 0 {
			return domainerrors.NewAppError(http.StatusConflict, "opening has no seats left", domainerrors.ErrOpeningClosed)
		}

		if _, err := uc.roster.AddMember(ctx, opening.TeamID, fresh.ApplicantID, "member"); err != nil {
			return err
		}
		if err := uc.appRepo.UpdateStatus(ctx, applicationID, entities.StatusAccepted); err != nil {
			return err
		}

		cur.SeatsAvailable--
		if cur.SeatsAvailable == 0 {
			cur.Status = entities.OpeningClosed
		}
		return uc.openingRepo.Update(ctx, cur)
	})
	if err != nil {
		return nil, err
	}

	app, err = uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	uc.notifier.NotifyUser(app.ApplicantID, EventMemberAdded, app)
	return app, nil
}

// Reject resolves a pending application without touching the roster.
func (uc *OpeningUsecase) Reject(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.OpeningApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	opening, err := uc.openingRepo.GetByID(ctx, app.OpeningID)
	if err != nil {
		return nil, err
	}
	team, err := uc.teamRepo.GetByID(ctx, opening.TeamID)
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

// Withdraw lets the applicant pull a still-pending application.
func (uc *OpeningUsecase) Withdraw(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.OpeningApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != actor.ID {
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
