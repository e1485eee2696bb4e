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

type CompetitionHandler struct {
	competitionUsecase *usecases.CompetitionUsecase
	applicationUsecase *usecases.CompetitionApplicationUsecase
}

func NewCompetitionHandler(
	competitionUsecase *usecases.CompetitionUsecase,
	applicationUsecase *usecases.CompetitionApplicationUsecase,
) *CompetitionHandler {
	return &CompetitionHandler{
		competitionUsecase: competitionUsecase,
		applicationUsecase: applicationUsecase,
	}
}

// CreateCompetition registers a competition. Admin only.
// POST /api/v1/competitions
func (h *CompetitionHandler) CreateCompetition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.CreateCompetitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	competition, err := h.competitionUsecase.Create(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"competition": competition})
}

// GetCompetition returns one competition with a freshly derived status.
// GET /api/v1/competitions/:id
func (h *CompetitionHandler) GetCompetition(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	competition, err := h.competitionUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"competition": competition})
}

// ListCompetitions lists competitions, optionally filtered by status.
// GET /api/v1/competitions?status=ACTIVE
func (h *CompetitionHandler) ListCompetitions(c *gin.Context) {
	params := paginationFromQuery(c)
	status := entities.CompetitionStatus(c.Query("status"))

	competitions, total, err := h.competitionUsecase.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"competitions": competitions,
		"pagination":   utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateCompetition patches a competition. Admin only.
// PUT /api/v1/competitions/:id
func (h *CompetitionHandler) UpdateCompetition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateCompetitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	competition, err := h.competitionUsecase.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"competition": competition})
}

// DeleteCompetition removes a competition. Admin only.
// DELETE /api/v1/competitions/:id
func (h *CompetitionHandler) DeleteCompetition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.competitionUsecase.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Competition deleted"})
}

// ApplyToCompetition enters a team into a competition.
// POST /api/v1/competitions/:id/applications
func (h *CompetitionHandler) ApplyToCompetition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	competitionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.ApplyToCompetitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.applicationUsecase.Apply(c.Request.Context(), actor, competitionID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": application})
}

// ListCompetitionApplications lists entries for one competition. Admin only.
// GET /api/v1/competitions/:id/applications
func (h *CompetitionHandler) ListCompetitionApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	competitionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationUsecase.ListByCompetition(c.Request.Context(), actor, competitionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// ListTeamCompetitionApplications lists a team's competition entries.
// GET /api/v1/teams/:id/competition-applications
func (h *CompetitionHandler) ListTeamCompetitionApplications(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.applicationUsecase.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// AcceptCompetitionApplication confirms the entry. Admin only.
// POST /api/v1/competition-applications/:id/accept
func (h *CompetitionHandler) AcceptCompetitionApplication(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationUsecase.Accept(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}

// RejectCompetitionApplication declines the entry. Admin only.
// POST /api/v1/competition-applications/:id/reject
func (h *CompetitionHandler) RejectCompetitionApplication(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := h.applicationUsecase.Reject(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}

// SetCompetitionResult records the outcome of an accepted entry. Admin only.
// PUT /api/v1/competition-applications/:id/result
func (h *CompetitionHandler) SetCompetitionResult(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.SetResultInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.applicationUsecase.SetResult(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}
