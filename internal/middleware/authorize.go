package middleware

import (
	"net/http"

	"workcurb/internal/access"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Authorize checks the caller's role against resource and action.
func Authorize(authz access.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := authz.Enforce(access.EnforceRequest{
			Role:     c.GetString(ContextRole),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			forbidden := apperror.ErrForbidden
			response.Error(c, forbidden.HTTPStatus, forbidden.Code, forbidden.Message,
				gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
