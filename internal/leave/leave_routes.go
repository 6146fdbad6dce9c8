package leave

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
	leaves := r.Group("/leave-requests")
	{
		leaves.GET("", middleware.Authorize(authz, access.ResourceLeave, access.ActionRead), handler.List)
		leaves.POST("", middleware.Authorize(authz, access.ResourceLeave, access.ActionCreate), idempotency, handler.Create)
		leaves.POST("/:id/review", middleware.Authorize(authz, access.ResourceLeave, access.ActionReview), handler.Review)
	}
}
