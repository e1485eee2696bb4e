package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"team-mentorship.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role entities.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock StudentProfileRepository
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) Upsert(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) List(ctx context.Context, limit, offset int) ([]*entities.StudentProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.StudentProfile), args.Get(1).(int64), args.Error(2)
}

// Mock MentorProfileRepository
type MockMentorProfileRepository struct {
	mock.Mock
}

func (m *MockMentorProfileRepository) Upsert(ctx context.Context, profile *entities.MentorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockMentorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.MentorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorProfile), args.Error(1)
}

func (m *MockMentorProfileRepository) List(ctx context.Context, limit, offset int) ([]*entities.MentorProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MentorProfile), args.Get(1).(int64), args.Error(2)
}

// Mock CompetitionRepository
type MockCompetitionRepository struct {
	mock.Mock
}

func (m *MockCompetitionRepository) Create(ctx context.Context, comp *entities.Competition) error {
	args := m.Called(ctx, comp)
	return args.Error(0)
}

func (m *MockCompetitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Competition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) List(ctx context.Context, status entities.CompetitionStatus, limit, offset int) ([]*entities.Competition, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Competition), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompetitionRepository) Update(ctx context.Context, comp *entities.Competition) error {
	args := m.Called(ctx, comp)
	return args.Error(0)
}

func (m *MockCompetitionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CompetitionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCompetitionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompetitionRepository) CountByStatus(ctx context.Context) (map[entities.CompetitionStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.CompetitionStatus]int64), args.Error(1)
}

// Mock CompetitionApplicationRepository
type MockCompetitionApplicationRepository struct {
	mock.Mock
}

func (m *MockCompetitionApplicationRepository) Create(ctx context.Context, app *entities.CompetitionApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockCompetitionApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CompetitionApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompetitionApplication), args.Error(1)
}

func (m *MockCompetitionApplicationRepository) FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID uuid.UUID) (*entities.CompetitionApplication, error) {
	args := m.Called(ctx, competitionID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompetitionApplication), args.Error(1)
}

func (m *MockCompetitionApplicationRepository) ListByCompetition(ctx context.Context, competitionID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	args := m.Called(ctx, competitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CompetitionApplication), args.Error(1)
}

func (m *MockCompetitionApplicationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CompetitionApplication), args.Error(1)
}

func (m *MockCompetitionApplicationRepository) Update(ctx context.Context, app *entities.CompetitionApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockCompetitionApplicationRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.RequestStatus]int64), args.Error(1)
}

// Mock TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context, status entities.TeamStatus, limit, offset int) ([]*entities.Team, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Team), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeamRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) UpdateSDGs(ctx context.Context, id uuid.UUID, sdgs []int) error {
	args := m.Called(ctx, id, sdgs)
	return args.Error(0)
}

func (m *MockTeamRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, member *entities.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) AddMentor(ctx context.Context, teamID, mentorID uuid.UUID) error {
	args := m.Called(ctx, teamID, mentorID)
	return args.Error(0)
}

func (m *MockTeamRepository) RecountMembers(ctx context.Context, teamID uuid.UUID) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamRepository) CountByStatus(ctx context.Context) (map[entities.TeamStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.TeamStatus]int64), args.Error(1)
}

func (m *MockTeamRepository) SDGDistribution(ctx context.Context) (map[int]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

// Mock TeamOpeningRepository
type MockTeamOpeningRepository struct {
	mock.Mock
}

func (m *MockTeamOpeningRepository) Create(ctx context.Context, opening *entities.TeamOpening) error {
	args := m.Called(ctx, opening)
	return args.Error(0)
}

func (m *MockTeamOpeningRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamOpening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamOpening), args.Error(1)
}

func (m *MockTeamOpeningRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.TeamOpening, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TeamOpening), args.Error(1)
}

func (m *MockTeamOpeningRepository) ListOpen(ctx context.Context, limit, offset int) ([]*entities.TeamOpening, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.TeamOpening), args.Get(1).(int64), args.Error(2)
}

func (m *MockTeamOpeningRepository) Update(ctx context.Context, opening *entities.TeamOpening) error {
	args := m.Called(ctx, opening)
	return args.Error(0)
}

func (m *MockTeamOpeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock OpeningApplicationRepository
type MockOpeningApplicationRepository struct {
	mock.Mock
}

func (m *MockOpeningApplicationRepository) Create(ctx context.Context, app *entities.OpeningApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockOpeningApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.OpeningApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OpeningApplication), args.Error(1)
}

func (m *MockOpeningApplicationRepository) FindByOpeningAndApplicant(ctx context.Context, openingID, applicantID uuid.UUID) (*entities.OpeningApplication, error) {
	args := m.Called(ctx, openingID, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OpeningApplication), args.Error(1)
}

func (m *MockOpeningApplicationRepository) ListByOpening(ctx context.Context, openingID uuid.UUID) ([]*entities.OpeningApplication, error) {
	args := m.Called(ctx, openingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OpeningApplication), args.Error(1)
}

func (m *MockOpeningApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*entities.OpeningApplication, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.OpeningApplication), args.Error(1)
}

func (m *MockOpeningApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock InvitationRepository
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, inv *entities.Invitation) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) FindPendingByTeamAndInvitee(ctx context.Context, teamID, inviteeID uuid.UUID) (*entities.Invitation, error) {
	args := m.Called(ctx, teamID, inviteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*entities.Invitation, error) {
	args := m.Called(ctx, inviteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Invitation, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Invitation), args.Error(1)
}

func (m *MockInvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock MentorApplicationRepository
type MockMentorApplicationRepository struct {
	mock.Mock
}

func (m *MockMentorApplicationRepository) Create(ctx context.Context, app *entities.MentorApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockMentorApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MentorApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorApplication), args.Error(1)
}

func (m *MockMentorApplicationRepository) FindPendingByTeamAndMentor(ctx context.Context, teamID, mentorID uuid.UUID) (*entities.MentorApplication, error) {
	args := m.Called(ctx, teamID, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MentorApplication), args.Error(1)
}

func (m *MockMentorApplicationRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.MentorApplication, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MentorApplication), args.Error(1)
}

func (m *MockMentorApplicationRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entities.MentorApplication, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MentorApplication), args.Error(1)
}

func (m *MockMentorApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockMentorApplicationRepository) RejectOtherPending(ctx context.Context, teamID, acceptedID uuid.UUID) (int64, error) {
	args := m.Called(ctx, teamID, acceptedID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ChatMessageRepository
type MockChatMessageRepository struct {
	mock.Mock
}

func (m *MockChatMessageRepository) Create(ctx context.Context, msg *entities.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, userA, userB, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

func (m *MockChatMessageRepository) ListTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, teamID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

func (m *MockChatMessageRepository) MarkRead(ctx context.Context, readerID uuid.UUID, messageIDs []uuid.UUID) error {
	args := m.Called(ctx, readerID, messageIDs)
	return args.Error(0)
}

// Mock Notifier records pushes so tests can assert on fan-out
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyUser(userID uuid.UUID, event string, payload interface{}) {
	m.Called(userID, event, payload)
}

func (m *MockNotifier) NotifyUsers(userIDs []uuid.UUID, event string, payload interface{}) {
	m.Called(userIDs, event, payload)
}
