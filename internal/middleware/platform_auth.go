package middleware

import (
	"errors"
	"fmt"
	"strings"

	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/response"
	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmployeeID = "employee_id"
	ContextCompanyID  = tenant.ContextKey
	ContextRole       = "role"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", 401)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", 401)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", 401)
)

// PlatformClaims are the claims the hosting platform puts in its bearer
// tokens.
type PlatformClaims struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// PlatformAuth verifies HMAC bearer tokens issued by the platform and copies
// the identity into the gin context. An empty secret disables verification.
func PlatformAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || tokenString == "" {
			abortWith(c, errTokenMissing)
			return
		}

		var claims PlatformClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, errTokenExpired)
				return
			}
			abortWith(c, errTokenInvalid)
			return
		}

		employeeID := claims.EmployeeID
		if employeeID == "" {
			employeeID = claims.Subject
		}
		if employeeID == "" || claims.CompanyID == "" {
			abortWith(c, errTokenInvalid)
			return
		}

		c.Set(ContextEmployeeID, employeeID)
		c.Set(ContextCompanyID, claims.CompanyID)
		c.Set(ContextRole, strings.ToUpper(claims.Role))
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
