package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// CompetitionUsecase handles competition listings. Status is always derived
// from the stored date range at read time; the persisted column is a cache
// kept warm by writes and the background refresh job.
type CompetitionUsecase struct {
	compRepo repositories.CompetitionRepository
	now      func() time.Time
}

// NewCompetitionUsecase creates a new competition usecase
func NewCompetitionUsecase(compRepo repositories.CompetitionRepository) *CompetitionUsecase {
	return &CompetitionUsecase{
		compRepo: compRepo,
		now:      time.Now,
	}
}

// Create registers a competition. A date range that cannot be parsed rejects
// the whole create.
func (uc *CompetitionUsecase) Create(ctx context.Context, actor Actor, input *entities.CreateCompetitionInput) (*entities.Competition, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may manage competitions")
	}
	if !entities.ValidateSDGs(input.SDGs) {
		return nil, domainerrors.BadRequest("sdgs must be between 1 and 17")
	}

	status, err := entities.DeriveStatus(input.DateRange, uc.now())
	if err != nil {
		return nil, err
	}

	comp := &entities.Competition{
		ID:             uuid.New(),
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		DateRange:      input.DateRange,
		Deadline:       input.Deadline,
		TeamSize:       input.TeamSize,
		Status:         status,
		PrizePool:      input.PrizePool,
		RequiredSkills: input.RequiredSkills,
		SDGs:           input.SDGs,
		PhotoPath:      input.PhotoPath,
		CreatedBy:      actor.ID,
	}
	if err := uc.compRepo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

// GetByID returns one competition with a freshly derived status.
func (uc *CompetitionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Competition, error) {
	comp, err := uc.compRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.refreshStatus(ctx, comp)
	return comp, nil
}

// List returns competitions with pagination, each with a freshly derived
// status. The optional status filter matches the persisted column first,
// then rows whose fresh status drifted out of the filter are dropped; the
// refresh also rewrites their column so they land in the right bucket on
// the next query.
func (uc *CompetitionUsecase) List(ctx context.Context, status entities.CompetitionStatus, limit, offset int) ([]*entities.Competition, int64, error) {
	comps, total, err := uc.compRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	fresh := comps[:0]
	for _, comp := range comps {
		uc.refreshStatus(ctx, comp)
		if status != "" && comp.Status != status {
			total--
			continue
		}
		fresh = append(fresh, comp)
	}
	return fresh, total, nil
}

// Update changes competition attributes. Changing the date range re-derives
// the status in the same write.
func (uc *CompetitionUsecase) Update(ctx context.Context, actor Actor, id uuid.UUID, input *entities.UpdateCompetitionInput) (*entities.Competition, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only admins may manage competitions")
	}

	comp, err := uc.compRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		comp.Name = *input.Name
	}
	if input.Category != nil {
		comp.Category = *input.Category
	}
	if input.Description != nil {
		comp.Description = *input.Description
	}
	if input.DateRange != nil {
		comp.DateRange = *input.DateRange
	}
	if input.Deadline != nil {
		comp.Deadline = input.Deadline
	}
	if input.TeamSize != nil {
		comp.TeamSize = *input.TeamSize
	}
	if input.PrizePool != nil {
		comp.PrizePool = *input.PrizePool
	}
	if input.RequiredSkills != nil {
		comp.RequiredSkills = input.RequiredSkills
	}
	if input.SDGs != nil {
		if !entities.ValidateSDGs(input.SDGs) {
			return nil, domainerrors.BadRequest("sdgs must be between 1 and 17")
		}
		comp.SDGs = input.SDGs
	}
	if input.PhotoPath != nil {
		comp.PhotoPath = *input.PhotoPath
	}

	status, err := entities.DeriveStatus(comp.DateRange, uc.now())
	if err != nil {
		return nil, err
	}
	comp.Status = status

	if err := uc.compRepo.Update(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

// Delete soft-deletes a competition.
func (uc *CompetitionUsecase) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return domainerrors.Forbidden("only admins may manage competitions")
	}
	if _, err := uc.compRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.compRepo.SoftDelete(ctx, id)
}

// RefreshStatuses walks every competition and rewrites stale persisted
// statuses. The background job calls this on a timer.
func (uc *CompetitionUsecase) RefreshStatuses(ctx context.Context) (int, error) {
	const batch = 200

	updated := 0
	for offset := 0; ; offset += batch {
		comps, _, err := uc.compRepo.List(ctx, "", batch, offset)
		if err != nil {
			return updated, err
		}
		if len(comps) == 0 {
			return updated, nil
		}
		for _, comp := range comps {
			status, err := entities.DeriveStatus(comp.DateRange, uc.now())
			if err != nil {
				// A malformed stored range is reported on read, not here.
				continue
			}
			if status == comp.Status {
				continue
			}
			if err := uc.compRepo.UpdateStatus(ctx, comp.ID, status); err != nil {
				return updated, err
			}
			updated++
		}
		if len(comps) < batch {
			return updated, nil
		}
	}
}

// refreshStatus re-derives the status and writes the cache back when stale.
// The derivation result always wins over the stored value.
func (uc *CompetitionUsecase) refreshStatus(ctx context.Context, comp *entities.Competition) {
	status, err := entities.DeriveStatus(comp.DateRange, uc.now())
	if err != nil {
		return
	}
	if status != comp.Status {
		_ = uc.compRepo.UpdateStatus(ctx, comp.ID, status)
		comp.Status = status
	}
}
