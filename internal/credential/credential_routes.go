package credential

import (
	"workcurb/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimit struct {
	PerSecond float64
	Burst     int
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, limit RateLimit) {
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitByIP(rate.Limit(limit.PerSecond), limit.Burst))
	{
		auth.POST("/login", handler.Login)
		auth.POST("/change-password", handler.ChangePassword)
	}
}
