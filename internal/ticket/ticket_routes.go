package ticket

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer, idempotency gin.HandlerFunc) {
	tickets := r.Group("/tickets")
	{
		tickets.GET("", middleware.Authorize(authz, access.ResourceTicket, access.ActionRead), handler.List)
		tickets.POST("", middleware.Authorize(authz, access.ResourceTicket, access.ActionCreate), idempotency, handler.Create)
	}
}
