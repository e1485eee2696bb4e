package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/interfaces/http/response"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/utils"
)

type OpeningHandler struct {
	openingUsecase *usecases.OpeningUsecase
}

func NewOpeningHandler(openingUsecase *usecases.OpeningUsecase) *OpeningHandler {
	return &OpeningHandler{openingUsecase: openingUsecase}
}

// CreateOpening posts a recruitment opening for a team. Owner or admin only.
// POST /api/v1/teams/:id/openings
func (h *OpeningHandler) CreateOpening(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.CreateOpeningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	opening, err := h.openingUsecase.Create(c.Request.Context(), actor, teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"opening": opening})
}

// GetOpening returns one opening.
// GET /api/v1/openings/:id
func (h *OpeningHandler) GetOpening(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	opening, err := h.openingUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"opening": opening})
}

// ListOpenOpenings lists openings still taking applications.
// GET /api/v1/openings
func (h *OpeningHandler) ListOpenOpenings(c *gin.Context) {
	params := paginationFromQuery(c)

	openings, total, err := h.openingUsecase.ListOpen(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"openings":   openings,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ListTeamOpenings lists a team's openings regardless of state.
// GET /api/v1/teams/:id/openings
func (h *OpeningHandler) ListTeamOpenings(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	openings, err := h.openingUsecase.ListByTeam(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"openings": openings})
}

// UpdateOpening patches an opening. Owner or admin only.
// PUT /api/v1/openings/:id
func (h *OpeningHandler) UpdateOpening(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.UpdateOpeningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	opening, err := h.openingUsecase.Update(c.Request.Context(), actor, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"opening": opening})
}

// DeleteOpening removes an opening. Owner or admin only.
// DELETE /api/v1/openings/:id
func (h *OpeningHandler) DeleteOpening(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.openingUsecase.Delete(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Opening deleted"})
}

// ApplyToOpening submits the caller's application for a seat.
// POST /api/v1/openings/:id/applications
func (h *OpeningHandler) ApplyToOpening(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.ApplyToOpeningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.openingUsecase.Apply(c.Request.Context(), actor, openingID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": application})
}

// ListOpeningApplications lists applications for one opening. Owner or
// admin only.
// GET /api/v1/openings/:id/applications
func (h *OpeningHandler) ListOpeningApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	openingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.openingUsecase.ListApplications(c.Request.Context(), actor, openingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// ListMyOpeningApplications lists the caller's own applications.
// GET /api/v1/opening-applications/mine
func (h *OpeningHandler) ListMyOpeningApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	applications, err := h.openingUsecase.ListMyApplications(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// AcceptOpeningApplication seats the applicant and decrements the opening.
// POST /api/v1/opening-applications/:id/accept
func (h *OpeningHandler) AcceptOpeningApplication(c *gin.Context) {
	h.resolveApplication(c, h.openingUsecase.Accept)
}

// RejectOpeningApplication declines the application.
// POST /api/v1/opening-applications/:id/reject
func (h *OpeningHandler) RejectOpeningApplication(c *gin.Context) {
	h.resolveApplication(c, h.openingUsecase.Reject)
}

// WithdrawOpeningApplication lets the applicant pull a pending application.
// POST /api/v1/opening-applications/:id/withdraw
func (h *OpeningHandler) WithdrawOpeningApplication(c *gin.Context) {
	h.resolveApplication(c, h.openingUsecase.Withdraw)
}

func (h *OpeningHandler) resolveApplication(c *gin.Context, fn func(ctx context.Context, actor usecases.Actor, id uuid.UUID) (*entities.OpeningApplication, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	application, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": application})
}
