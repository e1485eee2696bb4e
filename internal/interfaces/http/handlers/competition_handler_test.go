package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"team-mentorship.backend/internal/domain/entities"
	"team-mentorship.backend/internal/usecases"
)

type competitionTestEnv struct {
	users *userRepoStub
	teams *teamRepoStub
	comps *competitionRepoStub
	apps  *compAppRepoStub
	h     *CompetitionHandler
}

func newCompetitionTestEnv(t *testing.T) *competitionTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := &competitionTestEnv{
		users: newUserRepoStub(),
		teams: newTeamRepoStub(),
		comps: newCompetitionRepoStub(),
		apps:  newCompAppRepoStub(),
	}
	compUC := usecases.NewCompetitionUsecase(env.comps)
	appUC := usecases.NewCompetitionApplicationUsecase(env.apps, env.comps, env.teams, uowStub{})
	env.h = NewCompetitionHandler(compUC, appUC)
	return env
}

func (e *competitionTestEnv) router(actorID uuid.UUID, role entities.UserRole) *gin.Engine {
	r := gin.New()
	auth := asUser(actorID, role)
	r.POST("/competitions", auth, e.h.CreateCompetition)
	r.GET("/competitions/:id", e.h.GetCompetition)
	r.GET("/competitions", e.h.ListCompetitions)
	r.POST("/competitions/:id/applications", auth, e.h.ApplyToCompetition)
	r.POST("/competition-applications/:id/accept", auth, e.h.AcceptCompetitionApplication)
	r.PUT("/competition-applications/:id/result", auth, e.h.SetCompetitionResult)
	return r
}

func putJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func dateRangeAround(now time.Time, startOffset, endOffset int) string {
	start := now.UTC().AddDate(0, 0, startOffset).Format("2006-01-02")
	end := now.UTC().AddDate(0, 0, endOffset).Format("2006-01-02")
	return start + " - " + end
}

func TestCompetitionHandler_CreateDerivesStatus(t *testing.T) {
	env := newCompetitionTestEnv(t)
	admin := uuid.New()
	r := env.router(admin, entities.UserRoleAdmin)

	rec := postJSON(t, r, "/competitions", map[string]any{
		"name":      "Climate Hack",
		"category":  "hackathon",
		"dateRange": dateRangeAround(time.Now(), -1, 1),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Competition entities.Competition `json:"competition"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entities.CompetitionActive, body.Competition.Status)
	assert.Equal(t, admin, body.Competition.CreatedBy)
}

func TestCompetitionHandler_CreateForbiddenForStudents(t *testing.T) {
	env := newCompetitionTestEnv(t)
	r := env.router(uuid.New(), entities.UserRoleStudent)

	rec := postJSON(t, r, "/competitions", map[string]any{
		"name":      "Climate Hack",
		"category":  "hackathon",
		"dateRange": dateRangeAround(time.Now(), 1, 3),
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCompetitionHandler_CreateRejectsMalformedRange(t *testing.T) {
	env := newCompetitionTestEnv(t)
	r := env.router(uuid.New(), entities.UserRoleAdmin)

	rec := postJSON(t, r, "/competitions", map[string]any{
		"name":      "Climate Hack",
		"category":  "hackathon",
		"dateRange": "sometime next year",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompetitionHandler_GetRefreshesStaleStatus(t *testing.T) {
	env := newCompetitionTestEnv(t)
	comp := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Archive Jam",
		Category:  "hackathon",
		DateRange: dateRangeAround(time.Now(), -10, -5),
		Status:    entities.CompetitionActive,
	}
	env.comps.items[comp.ID] = comp

	r := env.router(uuid.New(), entities.UserRoleStudent)
	req := httptest.NewRequest(http.MethodGet, "/competitions/"+comp.ID.String(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Competition entities.Competition `json:"competition"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entities.CompetitionCompleted, body.Competition.Status)
	assert.Equal(t, entities.CompetitionCompleted, env.comps.items[comp.ID].Status)
}

func TestCompetitionHandler_ApplyAcceptResultFlow(t *testing.T) {
	env := newCompetitionTestEnv(t)
	student := &entities.User{ID: uuid.New(), Email: "s@example.com", Name: "Student", Role: entities.UserRoleStudent}
	env.users.items[student.ID] = student

	team := &entities.Team{
		ID:         uuid.New(),
		Name:       "Crew",
		OwnerID:    student.ID,
		MaxMembers: 4,
		Status:     entities.TeamRecruiting,
		Members:    []entities.TeamMember{{UserID: student.ID, Name: student.Name, Role: "owner"}},
	}
	env.teams.items[team.ID] = team

	comp := &entities.Competition{
		ID:        uuid.New(),
		Name:      "Climate Hack",
		Category:  "hackathon",
		DateRange: dateRangeAround(time.Now(), -1, 5),
		Status:    entities.CompetitionActive,
	}
	env.comps.items[comp.ID] = comp

	studentRouter := env.router(student.ID, student.Role)
	rec := postJSON(t, studentRouter, "/competitions/"+comp.ID.String()+"/applications", map[string]any{
		"teamId":     team.ID,
		"motivation": "we want in",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var applied struct {
		Application entities.CompetitionApplication `json:"application"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applied))
	assert.Equal(t, entities.StatusPending, applied.Application.Status)

	// Second entry for the same team conflicts.
	rec = postJSON(t, studentRouter, "/competitions/"+comp.ID.String()+"/applications", map[string]any{
		"teamId": team.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	adminRouter := env.router(uuid.New(), entities.UserRoleAdmin)
	appID := applied.Application.ID.String()

	// Result before acceptance is rejected.
	rec = putJSON(t, adminRouter, "/competition-applications/"+appID+"/result", map[string]any{
		"result": "winner",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = postJSON(t, adminRouter, "/competition-applications/"+appID+"/accept", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = putJSON(t, adminRouter, "/competition-applications/"+appID+"/result", map[string]any{
		"result":   "winner",
		"analysis": "strong delivery",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resolved struct {
		Application entities.CompetitionApplication `json:"application"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, "winner", resolved.Application.Result.String)
}

func TestCompetitionHandler_AcceptRequiresAdmin(t *testing.T) {
	env := newCompetitionTestEnv(t)
	r := env.router(uuid.New(), entities.UserRoleStudent)

	rec := postJSON(t, r, "/competition-applications/"+uuid.New().String()+"/accept", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
