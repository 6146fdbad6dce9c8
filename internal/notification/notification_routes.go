package notification

import (
	"workcurb/internal/access"
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public form endpoints on public and the
// onboarding endpoint on secured.
func RegisterRoutes(public, secured *gin.RouterGroup, handler *Handler, authz access.Enforcer, idempotency gin.HandlerFunc) {
	forms := public.Group("/notifications")
	{
		forms.POST("/bookings", idempotency, handler.Booking)
		forms.POST("/contacts", idempotency, handler.Contact)
	}

	onboarding := secured.Group("/notifications")
	{
		onboarding.POST("/onboarding", middleware.Authorize(authz, access.ResourceNotification, access.ActionCreate), idempotency, handler.Onboarding)
	}
}
