package billing

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	billing := r.Group("/billing")
	{
		billing.POST("/quote", handler.Quote)
		billing.POST("/orders", idempotency, handler.CreateOrder)
	}
}
