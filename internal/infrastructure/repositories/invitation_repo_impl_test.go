package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

func TestInvitationRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createInvitationTable(t, db)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	teamID := uuid.New()
	invitee := uuid.New()
	inv := &entities.Invitation{
		TeamID:    teamID,
		InviteeID: invitee,
		Message:   "join us",
		Status:    entities.StatusPending,
		CreatedBy: uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, inv))

	pending, err := repo.FindPendingByTeamAndInvitee(ctx, teamID, invitee)
	require.NoError(t, err)
	require.Equal(t, inv.ID, pending.ID)

	require.NoError(t, repo.UpdateStatus(ctx, inv.ID, entities.StatusAccepted))
	got, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusAccepted, got.Status)
	require.True(t, got.RespondedAt.Valid)

	// No longer pending: the duplicate-pending lookup stops matching.
	_, err = repo.FindPendingByTeamAndInvitee(ctx, teamID, invitee)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	byInvitee, err := repo.ListByInvitee(ctx, invitee)
	require.NoError(t, err)
	require.Len(t, byInvitee, 1)

	byTeam, err := repo.ListByTeam(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, byTeam, 1)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.StatusRejected), domainerrors.ErrNotFound)
}
