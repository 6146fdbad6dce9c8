package tenant_test

import (
	"net/http/httptest"
	"testing"

	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no identity uses the requested company", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		got, err := tenant.Resolve(c, "c-1")
		assert.NoError(t, err)
		assert.Equal(t, "c-1", got)
	})

	t.Run("identity fills an empty request", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(tenant.ContextKey, "c-2")
		got, err := tenant.Resolve(c, "")
		assert.NoError(t, err)
		assert.Equal(t, "c-2", got)
	})

	t.Run("negative mismatch is forbidden", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(tenant.ContextKey, "c-2")
		_, err := tenant.Resolve(c, "c-3")
		assert.ErrorIs(t, err, tenant.ErrCompanyMismatch)
	})
}
