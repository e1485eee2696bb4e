package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"team-mentorship.backend/internal/interfaces/http/response"
	"team-mentorship.backend/internal/usecases"
)

type DashboardHandler struct {
	dashboardUsecase *usecases.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetStats returns platform-wide aggregates. Admin only.
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) GetStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.dashboardUsecase.Stats(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
