package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	List(ctx context.Context, status entities.TeamStatus, limit, offset int) ([]*entities.Team, int64, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	UpdateSDGs(ctx context.Context, id uuid.UUID, sdgs []int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Roster mutations. AddMember and RemoveMember persist the roster change
	// and the authoritative member recount together.
	AddMember(ctx context.Context, member *entities.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	AddMentor(ctx context.Context, teamID, mentorID uuid.UUID) error
	RecountMembers(ctx context.Context, teamID uuid.UUID) error

	CountByStatus(ctx context.Context) (map[entities.TeamStatus]int64, error)
	SDGDistribution(ctx context.Context) (map[int]int64, error)
}

type TeamOpeningRepository interface {
	Create(ctx context.Context, opening *entities.TeamOpening) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamOpening, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamOpening, error)
	ListOpen(ctx context.Context, limit, offset int) ([]*entities.TeamOpening, int64, error)
	Update(ctx context.Context, opening *entities.TeamOpening) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OpeningApplicationRepository interface {
	Create(ctx context.Context, app *entities.OpeningApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.OpeningApplication, error)
	FindByOpeningAndApplicant(ctx context.Context, openingID, applicantID uuid.UUID) (*entities.OpeningApplication, error)
	ListByOpening(ctx context.Context, openingID uuid.UUID) ([]*entities.OpeningApplication, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entities.OpeningApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error
}

type InvitationRepository interface {
	Create(ctx context.Context, inv *entities.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error)
	FindPendingByTeamAndInvitee(ctx context.Context, teamID, inviteeID uuid.UUID) (*entities.Invitation, error)
	ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*entities.Invitation, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Invitation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error
}

type MentorApplicationRepository interface {
	Create(ctx context.Context, app *entities.MentorApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorApplication, error)
	FindPendingByTeamAndMentor(ctx context.Context, teamID, mentorID uuid.UUID) (*entities.MentorApplication, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.MentorApplication, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error
	// RejectOtherPending force-rejects every other pending application for
	// the team, so at most one accepted application is ever outstanding.
	RejectOtherPending(ctx context.Context, teamID, acceptedID uuid.UUID) (int64, error)
}
