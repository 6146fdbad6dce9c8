package course

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer, idempotency gin.HandlerFunc) {
	courses := r.Group("/courses")
	{
		courses.POST("", middleware.Authorize(authz, access.ResourceCourse, access.ActionCreate), handler.CreateCourse)
		courses.POST("/assign", middleware.Authorize(authz, access.ResourceCourse, access.ActionAssign), idempotency, handler.Assign)
		courses.POST("/progress", middleware.Authorize(authz, access.ResourceCourse, access.ActionUpdate), handler.UpdateProgress)
		courses.GET("/assignments", middleware.Authorize(authz, access.ResourceCourse, access.ActionRead), handler.ListAssignments)
	}
}
