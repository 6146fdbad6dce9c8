package attendance

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authz access.Enforcer,
	idempotency gin.HandlerFunc,
) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", middleware.Authorize(authz, access.ResourceAttendance, access.ActionRead), handler.List)
		attendance.POST("/clock-in", middleware.Authorize(authz, access.ResourceAttendance, access.ActionCreate), idempotency, handler.ClockIn)
		attendance.POST("/clock-out", middleware.Authorize(authz, access.ResourceAttendance, access.ActionCreate), handler.ClockOut)
	}
}
