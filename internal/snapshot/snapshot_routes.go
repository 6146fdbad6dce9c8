package snapshot

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer) {
	r.GET("/employees/:id/snapshot", middleware.Authorize(authz, access.ResourceSnapshot, access.ActionRead), handler.Get)
}
