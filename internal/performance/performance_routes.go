package performance

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz access.Enforcer, idempotency gin.HandlerFunc) {
	ratings := r.Group("/performance-ratings")
	{
		ratings.GET("", middleware.Authorize(authz, access.ResourcePerformance, access.ActionRead), handler.List)
		ratings.POST("", middleware.Authorize(authz, access.ResourcePerformance, access.ActionCreate), idempotency, handler.Record)
	}
}
