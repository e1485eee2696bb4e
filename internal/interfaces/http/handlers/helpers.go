package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/interfaces/http/middleware"
	"team-mentorship.backend/internal/interfaces/http/response"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/utils"
)

// requireActor resolves the authenticated caller. Routes behind
// AuthMiddleware always have one; a miss means the route was wired
// without auth and is reported as 401, not 500.
func requireActor(c *gin.Context) (usecases.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return usecases.Actor{}, false
	}
	return actor, true
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func paginationFromQuery(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return utils.GetPaginationParams(page, limit)
}
