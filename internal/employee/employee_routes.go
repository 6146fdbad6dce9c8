package employee

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer) {
	employees := r.Group("/employees")
	{
		employees.GET("/:id", middleware.Authorize(authz, access.ResourceEmployee, access.ActionRead), handler.GetByID)
	}
}
