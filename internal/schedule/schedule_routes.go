package schedule

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer, idempotency gin.HandlerFunc) {
	schedules := r.Group("/schedules")
	{
		schedules.POST("", middleware.Authorize(authz, access.ResourceSchedule, access.ActionCreate), idempotency, handler.Create)
		schedules.GET("/:id", middleware.Authorize(authz, access.ResourceSchedule, access.ActionRead), handler.Get)
		schedules.POST("/:id/assign", middleware.Authorize(authz, access.ResourceSchedule, access.ActionAssign), idempotency, handler.Assign)
	}
}
