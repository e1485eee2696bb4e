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

type InvitationHandler struct {
	invitationUsecase *usecases.InvitationUsecase
}

func NewInvitationHandler(invitationUsecase *usecases.InvitationUsecase) *InvitationHandler {
	return &InvitationHandler{invitationUsecase: invitationUsecase}
}

// CreateInvitation invites a user onto the team. Owner or admin only.
// POST /api/v1/teams/:id/invitations
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.CreateInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	invitation, err := h.invitationUsecase.Create(c.Request.Context(), actor, teamID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"invitation": invitation})
}

// ListMyInvitations lists invitations addressed to the caller.
// GET /api/v1/invitations/mine
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	invitations, err := h.invitationUsecase.ListMine(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invitations": invitations})
}

// ListTeamInvitations lists a team's outgoing invitations. Owner or admin
// only.
// GET /api/v1/teams/:id/invitations
func (h *InvitationHandler) ListTeamInvitations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invitations, err := h.invitationUsecase.ListByTeam(c.Request.Context(), actor, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invitations": invitations})
}

// AcceptInvitation seats the invitee. Invitee only.
// POST /api/v1/invitations/:id/accept
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	h.resolveInvitation(c, h.invitationUsecase.Accept)
}

// RejectInvitation declines the invitation. Invitee only.
// POST /api/v1/invitations/:id/reject
func (h *InvitationHandler) RejectInvitation(c *gin.Context) {
	h.resolveInvitation(c, h.invitationUsecase.Reject)
}

// WithdrawInvitation pulls a pending invitation. Team owner or admin only.
// POST /api/v1/invitations/:id/withdraw
func (h *InvitationHandler) WithdrawInvitation(c *gin.Context) {
	h.resolveInvitation(c, h.invitationUsecase.Withdraw)
}

func (h *InvitationHandler) resolveInvitation(c *gin.Context, fn func(ctx context.Context, actor usecases.Actor, id uuid.UUID) (*entities.Invitation, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	invitation, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invitation": invitation})
}
