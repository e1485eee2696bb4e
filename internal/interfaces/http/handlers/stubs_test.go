package handlers

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

// In-memory stand-ins for the gorm repositories. Handler tests drive the
// real usecases over these so the full request path is exercised without
// a database.

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	items map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range s.items {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	if _, ok := s.items[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) CountByRole(_ context.Context, role entities.UserRole) (int64, error) {
	var n int64
	for _, user := range s.items {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *userRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type teamRepoStub struct {
	items map[uuid.UUID]*entities.Team
}

func newTeamRepoStub() *teamRepoStub {
	return &teamRepoStub{items: map[uuid.UUID]*entities.Team{}}
}

func (s *teamRepoStub) Create(_ context.Context, team *entities.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	for i := range team.Members {
		team.Members[i].TeamID = team.ID
	}
	team.CurrentMembers = len(team.Members)
	s.items[team.ID] = team
	return nil
}

func (s *teamRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	team, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *team
	cp.Members = append([]entities.TeamMember(nil), team.Members...)
	cp.MentorIDs = append([]uuid.UUID(nil), team.MentorIDs...)
	return &cp, nil
}

func (s *teamRepoStub) List(_ context.Context, status entities.TeamStatus, limit, offset int) ([]*entities.Team, int64, error) {
	out := make([]*entities.Team, 0)
	for _, team := range s.items {
		if status == "" || team.Status == status {
			out = append(out, team)
		}
	}
	return out, int64(len(out)), nil
}

func (s *teamRepoStub) ListByMember(_ context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	out := make([]*entities.Team, 0)
	for _, team := range s.items {
		if team.HasMember(userID) {
			out = append(out, team)
		}
	}
	return out, nil
}

func (s *teamRepoStub) Update(_ context.Context, team *entities.Team) error {
	if _, ok := s.items[team.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[team.ID] = team
	return nil
}

func (s *teamRepoStub) UpdateSDGs(_ context.Context, id uuid.UUID, sdgs []int) error {
	team, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	team.SDGs = sdgs
	return nil
}

func (s *teamRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *teamRepoStub) AddMember(_ context.Context, member *entities.TeamMember) error {
	team, ok := s.items[member.TeamID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	team.Members = append(team.Members, *member)
	team.CurrentMembers = len(team.Members)
	return nil
}

func (s *teamRepoStub) RemoveMember(_ context.Context, teamID, userID uuid.UUID) error {
	team, ok := s.items[teamID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	kept := team.Members[:0]
	for _, m := range team.Members {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	team.Members = kept
	team.CurrentMembers = len(team.Members)
	return nil
}

func (s *teamRepoStub) AddMentor(_ context.Context, teamID, mentorID uuid.UUID) error {
	team, ok := s.items[teamID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	team.MentorIDs = append(team.MentorIDs, mentorID)
	return nil
}

func (s *teamRepoStub) RecountMembers(_ context.Context, teamID uuid.UUID) error {
	team, ok := s.items[teamID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	team.CurrentMembers = len(team.Members)
	return nil
}

func (s *teamRepoStub) CountByStatus(_ context.Context) (map[entities.TeamStatus]int64, error) {
	out := map[entities.TeamStatus]int64{}
	for _, team := range s.items {
		out[team.Status]++
	}
	return out, nil
}

func (s *teamRepoStub) SDGDistribution(_ context.Context) (map[int]int64, error) {
	out := map[int]int64{}
	for _, team := range s.items {
		for _, sdg := range team.SDGs {
			out[sdg]++
		}
	}
	return out, nil
}

type competitionRepoStub struct {
	items map[uuid.UUID]*entities.Competition
}

func newCompetitionRepoStub() *competitionRepoStub {
	return &competitionRepoStub{items: map[uuid.UUID]*entities.Competition{}}
}

func (s *competitionRepoStub) Create(_ context.Context, comp *entities.Competition) error {
	if comp.ID == uuid.Nil {
		comp.ID = uuid.New()
	}
	s.items[comp.ID] = comp
	return nil
}

func (s *competitionRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Competition, error) {
	comp, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *comp
	return &cp, nil
}

func (s *competitionRepoStub) List(_ context.Context, status entities.CompetitionStatus, limit, offset int) ([]*entities.Competition, int64, error) {
	out := make([]*entities.Competition, 0)
	for _, comp := range s.items {
		if status == "" || comp.Status == status {
			out = append(out, comp)
		}
	}
	return out, int64(len(out)), nil
}

func (s *competitionRepoStub) Update(_ context.Context, comp *entities.Competition) error {
	if _, ok := s.items[comp.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[comp.ID] = comp
	return nil
}

func (s *competitionRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.CompetitionStatus) error {
	comp, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	comp.Status = status
	return nil
}

func (s *competitionRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *competitionRepoStub) CountByStatus(_ context.Context) (map[entities.CompetitionStatus]int64, error) {
	out := map[entities.CompetitionStatus]int64{}
	for _, comp := range s.items {
		out[comp.Status]++
	}
	return out, nil
}

type chatRepoStub struct {
	items []*entities.ChatMessage
}

func (s *chatRepoStub) Create(_ context.Context, msg *entities.ChatMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	s.items = append(s.items, msg)
	return nil
}

func (s *chatRepoStub) ListConversation(_ context.Context, userA, userB uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	out := make([]*entities.ChatMessage, 0)
	for _, msg := range s.items {
		if msg.IsTeam {
			continue
		}
		if (msg.FromID == userA && msg.ToID == userB) || (msg.FromID == userB && msg.ToID == userA) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *chatRepoStub) ListTeam(_ context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	out := make([]*entities.ChatMessage, 0)
	for _, msg := range s.items {
		if msg.IsTeam && msg.ToID == teamID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (s *chatRepoStub) MarkRead(_ context.Context, readerID uuid.UUID, messageIDs []uuid.UUID) error {
	want := map[uuid.UUID]bool{}
	for _, id := range messageIDs {
		want[id] = true
	}
	for _, msg := range s.items {
		if !want[msg.ID] {
			continue
		}
		seen := false
		for _, r := range msg.ReadBy {
			if r == readerID {
				seen = true
				break
			}
		}
		if !seen {
			msg.ReadBy = append(msg.ReadBy, readerID)
		}
	}
	return nil
}

type compAppRepoStub struct {
	items map[uuid.UUID]*entities.CompetitionApplication
}

func newCompAppRepoStub() *compAppRepoStub {
	return &compAppRepoStub{items: map[uuid.UUID]*entities.CompetitionApplication{}}
}

func (s *compAppRepoStub) Create(_ context.Context, app *entities.CompetitionApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	s.items[app.ID] = app
	return nil
}

func (s *compAppRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.CompetitionApplication, error) {
	app, ok := s.items[id]
	if !ok {
		return nil, domainerrors.NotFound("competition application not found")
	}
	cp := *app
	return &cp, nil
}

func (s *compAppRepoStub) FindByCompetitionAndTeam(_ context.Context, competitionID, teamID uuid.UUID) (*entities.CompetitionApplication, error) {
	for _, app := range s.items {
		if app.CompetitionID == competitionID && app.TeamID == teamID {
			cp := *app
			return &cp, nil
		}
	}
	return nil, domainerrors.NotFound("competition application not found")
}

func (s *compAppRepoStub) ListByCompetition(_ context.Context, competitionID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	out := make([]*entities.CompetitionApplication, 0)
	for _, app := range s.items {
		if app.CompetitionID == competitionID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *compAppRepoStub) ListByTeam(_ context.Context, teamID uuid.UUID) ([]*entities.CompetitionApplication, error) {
	out := make([]*entities.CompetitionApplication, 0)
	for _, app := range s.items {
		if app.TeamID == teamID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *compAppRepoStub) Update(_ context.Context, app *entities.CompetitionApplication) error {
	if _, ok := s.items[app.ID]; !ok {
		return domainerrors.NotFound("competition application not found")
	}
	cp := *app
	s.items[app.ID] = &cp
	return nil
}

func (s *compAppRepoStub) CountByStatus(_ context.Context) (map[entities.RequestStatus]int64, error) {
	out := map[entities.RequestStatus]int64{}
	for _, app := range s.items {
		out[app.Status]++
	}
	return out, nil
}
