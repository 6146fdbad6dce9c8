package company

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer) {
	events := r.Group("/company-events")
	{
		events.GET("", middleware.Authorize(authz, access.ResourceCompanyEvent, access.ActionRead), handler.ListEvents)
		events.POST("", middleware.Authorize(authz, access.ResourceCompanyEvent, access.ActionCreate), handler.CreateEvent)
	}
}
