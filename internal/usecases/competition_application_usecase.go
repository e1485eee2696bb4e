package usecases

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// CompetitionApplicationUsecase handles team entries into competitions
type CompetitionApplicationUsecase struct {
	appRepo  repositories.CompetitionApplicationRepository
	compRepo repositories.CompetitionRepository
	teamRepo repositories.TeamRepository
	uow      repositories.UnitOfWork
	now      func() time.Time
}

// NewCompetitionApplicationUsecase creates a new competition application usecase
func NewCompetitionApplicationUsecase(
	appRepo repositories.CompetitionApplicationRepository,
	compRepo repositories.CompetitionRepository,
	teamRepo repositories.TeamRepository,
	uow repositories.UnitOfWork,
) *CompetitionApplicationUsecase {
	return &CompetitionApplicationUsecase{
		appRepo:  appRepo,
		compRepo: compRepo,
		teamRepo: teamRepo,
		uow:      uow,
		now:      time.Now,
	}
}

// Apply enters a team into a competition. One entry per team per
// competition; the applicant must hold a seat on the team, and completed
// competitions accept no entries.
func (uc *CompetitionApplicationUsecase) Apply(ctx context.Context, actor Actor, competitionID uuid.UUID, input *entities.ApplyToCompetitionInput) (*entities.CompetitionApplication, error) {
	comp, err := uc.compRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	status, err := entities.DeriveStatus(comp.DateRange, uc.now())
	if err != nil {
		return nil, err
	}
	if status == entities.CompetitionCompleted {
		return nil, domainerrors.BadRequest("competition has already completed")
	}

	team, err := uc.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(actor.ID) && !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("applicant must be on the team roster")
	}

	existing, err := uc.appRepo.FindByCompetitionAndTeam(ctx, competitionID, input.TeamID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("team has already entered this competition", domainerrors.ErrDuplicateApplication)
	}

	app := &entities.CompetitionApplication{
		ID:            uuid.New(),
		CompetitionID: competitionID,
		StudentID:     actor.ID,
		TeamID:        input.TeamID,
		Motivation:    input.Motivation,
		Skills:        input.Skills,
		Status:        entities.StatusPending,
	}
	if err := uc.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetByID returns one entry.
func (uc *CompetitionApplicationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionApplication, error) {
	return uc.appRepo.GetByID(ctx, id)
}

// ListByCompetition returns every entry for a competition. Admin only.
func (uc *CompetitionApplicationUsecase) ListByCompetition(ctx context.Context, actor Actor, competitionID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may list competition entries")
	}
	return uc.appRepo.ListByCompetition(ctx, competitionID)
}

// ListByTeam returns a team's entries.
func (uc *CompetitionApplicationUsecase) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	return uc.appRepo.ListByTeam(ctx, teamID)
}

// Accept resolves a pending entry. Admin only.
func (uc *CompetitionApplicationUsecase) Accept(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.CompetitionApplication, error) {
	return uc.resolve(ctx, actor, applicationID, entities.StatusAccepted)
}

// Reject resolves a pending entry. Admin only.
func (uc *CompetitionApplicationUsecase) Reject(ctx context.Context, actor Actor, applicationID uuid.UUID) (*entities.CompetitionApplication, error) {
	return uc.resolve(ctx, actor, applicationID, entities.StatusRejected)
}

func (uc *CompetitionApplicationUsecase) resolve(ctx context.Context, actor Actor, applicationID uuid.UUID, to entities.RequestStatus) (*entities.CompetitionApplication, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may resolve competition entries")
	}

	var app *entities.CompetitionApplication
	err := uc.uow.Do(ctx, func(ctx context.Context) error {
		fresh, err := uc.appRepo.GetByID(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := fresh.Status.EnsurePending(); err != nil {
			return err
		}
		fresh.Status = to
		fresh.ResolvedAt = null.TimeFrom(uc.now().UTC())
		if err := uc.appRepo.Update(ctx, fresh); err != nil {
			return err
		}
		app = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// SetResult records the outcome of an entry. Only accepted entries can carry
// a result, and the result value must be one of the known outcomes.
func (uc *CompetitionApplicationUsecase) SetResult(ctx context.Context, actor Actor, applicationID uuid.UUID, input *entities.SetResultInput) (*entities.CompetitionApplication, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may record results")
	}
	if !entities.ValidResult(input.Result) {
		return nil, domainerrors.BadRequest("unknown result value: " + string(input.Result))
	}

	app, err := uc.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != entities.StatusAccepted {
		return nil, domainerrors.NewAppError(
			http.StatusConflict,
			"results can only be recorded for accepted entries",
			domainerrors.ErrInvalidTransition,
		)
	}

	app.Result = null.StringFrom(string(input.Result))
	if input.Analysis != "" {
		app.Analysis = null.StringFrom(input.Analysis)
	}
	if err := uc.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}
