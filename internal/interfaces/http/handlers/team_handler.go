package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/interfaces/http/response"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/utils"
)

type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// CreateTeam creates a team with the caller as seated owner.
// POST /api/v1/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.CreateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"team": team})
}

// GetTeam returns one team with its roster.
// GET /api/v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// ListTeams lists teams, optionally filtered by status.
// GET /api/v1/teams?status=ACTIVE
func (h *TeamHandler) ListTeams(c *gin.Context) {
	params := paginationFromQuery(c)
	status := entities.TeamStatus(c.Query("status"))

	teams, total, err := h.teamUsecase.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"teams":      teams,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ListMyTeams lists teams where the caller holds a seat.
// GET /api/v1/teams/mine
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	teams, err := h.teamUsecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"teams": teams})
}

// UpdateTeam patches team attributes. Owner or admin only.
// PUT /api/v1/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateTeamInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// UpdateTeamSDGs replaces the team's SDG tags. Owner or admin only.
// PUT /api/v1/teams/:id/sdgs
func (h *TeamHandler) UpdateTeamSDGs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		SDGs []int `json:"sdgs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.UpdateSDGs(c.Request.Context(), actor, id, input.SDGs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// DeleteTeam removes a team. Owner or admin only.
// DELETE /api/v1/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamUsecase.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Team deleted"})
}

// AddMember seats a user directly. Owner or admin only.
// POST /api/v1/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.AddMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	team, err := h.teamUsecase.AddMember(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}

// RemoveMember frees a seat. The member may leave on their own; anyone
// else needs owner or admin rights.
// DELETE /api/v1/teams/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	team, err := h.teamUsecase.RemoveMember(c.Request.Context(), actor, id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"team": team})
}
