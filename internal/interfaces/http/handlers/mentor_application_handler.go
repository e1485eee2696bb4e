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
)

type MentorApplicationHandler struct {
	mentorAppUsecase *usecases.MentorApplicationUsecase
}

func NewMentorApplicationHandler(mentorAppUsecase *usecases.MentorApplicationUsecase) *MentorApplicationHandler {
	return &MentorApplicationHandler{mentorAppUsecase: mentorAppUsecase}
}

// ApplyAsMentor submits a mentor's offer to advise a team. Mentors only.
// POST /api/v1/teams/:id/mentor-applications
func (h *MentorApplicationHandler) ApplyAsMentor(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.ApplyAsMentorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	application, err := h.mentorAppUsecase.Apply(c.Request.Context(), actor, teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": application})
}

// ListTeamMentorApplications lists mentor offers for a team. Owner or
// admin only.
// GET /api/v1/teams/:id/mentor-applications
func (h *MentorApplicationHandler) ListTeamMentorApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	applications, err := h.mentorAppUsecase.ListByTeam(c.Request.Context(), actor, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// ListMyMentorApplications lists the caller's own mentor offers.
// GET /api/v1/mentor-applications/mine
func (h *MentorApplicationHandler) ListMyMentorApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	applications, err := h.mentorAppUsecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": applications})
}

// AcceptMentorApplication attaches the mentor and rejects competing
// pending offers. Owner or admin only.
// POST /api/v1/mentor-applications/:id/accept
func (h *MentorApplicationHandler) AcceptMentorApplication(c *gin.Context) {
	h.resolveMentorApplication(c, h.mentorAppUsecase.Accept)
}

// RejectMentorApplication declines the offer. Owner or admin only.
// POST /api/v1/mentor-applications/:id/reject
func (h *MentorApplicationHandler) RejectMentorApplication(c *gin.Context) {
	h.resolveMentorApplication(c, h.mentorAppUsecase.Reject)
}

// WithdrawMentorApplication pulls a pending offer. Applicant only.
// POST /api/v1/mentor-applications/:id/withdraw
func (h *MentorApplicationHandler) WithdrawMentorApplication(c *gin.Context) {
	h.resolveMentorApplication(c, h.mentorAppUsecase.Withdraw)
}

func (h *MentorApplicationHandler) resolveMentorApplication(c *gin.Context, fn func(ctx context.Context, actor usecases.Actor, id uuid.UUID) (*entities.MentorApplication, error)) {
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
