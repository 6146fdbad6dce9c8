package tenant

import (
	"net/http"

	"workcurb/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ContextKey is the gin context key under which the authenticated company id
// is stored by the platform auth middleware.
const ContextKey = "company_id"

var ErrCompanyMismatch = apperror.New(
	apperror.CodeForbidden,
	"company_id does not match the authenticated company",
	http.StatusForbidden,
)

// Resolve picks the company a request acts on. Without a platform identity the
// requested id is used as is; with one, requested must be empty or equal to it.
func Resolve(c *gin.Context, requested string) (string, error) {
	authenticated := c.GetString(ContextKey)
	if authenticated == "" {
		return requested, nil
	}
	if requested != "" && requested != authenticated {
		return "", ErrCompanyMismatch
	}
	return authenticated, nil
}
