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

type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// UpsertStudentProfile creates or replaces the caller's student profile.
// PUT /api/v1/profiles/student
func (h *ProfileHandler) UpsertStudentProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.UpdateStudentProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpsertStudentProfile(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// GetStudentProfile returns one student profile by user id.
// GET /api/v1/profiles/student/:userId
func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetStudentProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// ListStudentProfiles lists student profiles with pagination.
// GET /api/v1/profiles/students
func (h *ProfileHandler) ListStudentProfiles(c *gin.Context) {
	params := paginationFromQuery(c)

	profiles, total, err := h.profileUsecase.ListStudentProfiles(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profiles":   profiles,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpsertMentorProfile creates or replaces the caller's mentor profile.
// PUT /api/v1/profiles/mentor
func (h *ProfileHandler) UpsertMentorProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var input entities.UpdateMentorProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUsecase.UpsertMentorProfile(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// GetMentorProfile returns one mentor profile by user id.
// GET /api/v1/profiles/mentor/:userId
func (h *ProfileHandler) GetMentorProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetMentorProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}

// ListMentorProfiles lists mentor profiles with pagination.
// GET /api/v1/profiles/mentors
func (h *ProfileHandler) ListMentorProfiles(c *gin.Context) {
	params := paginationFromQuery(c)

	profiles, total, err := h.profileUsecase.ListMentorProfiles(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profiles":   profiles,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
