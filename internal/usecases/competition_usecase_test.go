package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/usecases"
)

var admin = usecases.Actor{ID: uuid.New(), Role: entities.UserRoleAdmin}

func TestCompetitionUsecase_Create_MalformedRangeRejected(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	_, err := uc.Create(context.Background(), admin, &entities.CreateCompetitionInput{
		Name:      "Hack the Grid",
		Category:  "energy",
		DateRange: "sometime next spring",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	mockCompRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompetitionUsecase_Create_DerivesStatus(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	mockCompRepo.On("Create", context.Background(), mock.MatchedBy(func(comp *entities.Competition) bool {
		return comp.Status == entities.CompetitionUpcoming
	})).Return(nil).Once()

	comp, err := uc.Create(context.Background(), admin, &entities.CreateCompetitionInput{
		Name:      "Hack the Grid",
		Category:  "energy",
		DateRange: "2999-01-01 - 2999-03-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.CompetitionUpcoming, comp.Status)
	mockCompRepo.AssertExpectations(t)
}

func TestCompetitionUsecase_Create_NonAdminForbidden(t *testing.T) {
	uc := usecases.NewCompetitionUsecase(new(MockCompetitionRepository))

	_, err := uc.Create(context.Background(), usecases.Actor{ID: uuid.New(), Role: entities.UserRoleStudent}, &entities.CreateCompetitionInput{
		Name:      "Hack the Grid",
		Category:  "energy",
		DateRange: "2999-01-01 - 2999-03-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCompetitionUsecase_GetByID_RefreshesStaleStatus(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	comp := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Hack the Grid",
		DateRange: "2001-01-01 - 2001-03-01",
		Status:    entities.CompetitionActive, // stale cache
	}
	mockCompRepo.On("GetByID", context.Background(), comp.ID).Return(comp, nil).Once()
	mockCompRepo.On("UpdateStatus", context.Background(), comp.ID, entities.CompetitionCompleted).Return(nil).Once()

	got, err := uc.GetByID(context.Background(), comp.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.CompetitionCompleted, got.Status)
	mockCompRepo.AssertExpectations(t)
}

func TestCompetitionUsecase_GetByID_FreshStatusSkipsWrite(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	comp := &entities.Competition{
		ID:        uuid.New(),
		DateRange: "2999-01-01 - 2999-03-01",
		Status:    entities.CompetitionUpcoming,
	}
	mockCompRepo.On("GetByID", context.Background(), comp.ID).Return(comp, nil).Once()

	got, err := uc.GetByID(context.Background(), comp.ID)
	assert.NoError(t, err)
	assert.Equal(t, entities.CompetitionUpcoming, got.Status)
	mockCompRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompetitionUsecase_Update_RangeChangeRederives(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	comp := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Hack the Grid",
		DateRange: "2999-01-01 - 2999-03-01",
		Status:    entities.CompetitionUpcoming,
	}
	mockCompRepo.On("GetByID", context.Background(), comp.ID).Return(comp, nil).Once()
	mockCompRepo.On("Update", context.Background(), mock.MatchedBy(func(c *entities.Competition) bool {
		return c.Status == entities.CompetitionCompleted
	})).Return(nil).Once()

	past := "2001-01-01 - 2001-03-01"
	got, err := uc.Update(context.Background(), admin, comp.ID, &entities.UpdateCompetitionInput{DateRange: &past})
	assert.NoError(t, err)
	assert.Equal(t, entities.CompetitionCompleted, got.Status)
	mockCompRepo.AssertExpectations(t)
}

func TestCompetitionUsecase_RefreshStatuses_WritesOnlyStale(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	stale := &entities.Competition{
		ID:        uuid.New(),
		DateRange: "2001-01-01 - 2001-03-01",
		Status:    entities.CompetitionActive,
	}
	fresh := &entities.Competition{
		ID:        uuid.New(),
		DateRange: "2999-01-01 - 2999-03-01",
		Status:    entities.CompetitionUpcoming,
	}
	malformed := &entities.Competition{
		ID:        uuid.New(),
		DateRange: "never",
		Status:    entities.CompetitionUpcoming,
	}

	mockCompRepo.On("List", context.Background(), entities.CompetitionStatus(""), 200, 0).
		Return([]*entities.Competition{stale, fresh, malformed}, int64(3), nil).Once()
	mockCompRepo.On("UpdateStatus", context.Background(), stale.ID, entities.CompetitionCompleted).Return(nil).Once()

	updated, err := uc.RefreshStatuses(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, updated)
	mockCompRepo.AssertExpectations(t)
}

func TestCompetitionUsecase_List_DropsRowsThatDriftedOutOfFilter(t *testing.T) {
	mockCompRepo := new(MockCompetitionRepository)
	uc := usecases.NewCompetitionUsecase(mockCompRepo)

	stillActive := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Ongoing Sprint",
		DateRange: "2001-01-01 - 2999-03-01",
		Status:    entities.CompetitionActive,
	}
	justEnded := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Finished Jam",
		DateRange: "2001-01-01 - 2001-03-01",
		Status:    entities.CompetitionActive, // stale cache
	}

	mockCompRepo.On("List", context.Background(), entities.CompetitionActive, 20, 0).
		Return([]*entities.Competition{stillActive, justEnded}, int64(2), nil).Once()
	mockCompRepo.On("UpdateStatus", context.Background(), justEnded.ID, entities.CompetitionCompleted).Return(nil).Once()

	comps, total, err := uc.List(context.Background(), entities.CompetitionActive, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, comps, 1)
	assert.Equal(t, stillActive.ID, comps[0].ID)
	mockCompRepo.AssertExpectations(t)
}
