package snapshot

import (
	"net/http"
	"strings"

	"workcurb/internal/access"
	"workcurb/internal/middleware"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/response"
	snapshoterrors "workcurb/internal/snapshot/errors"
	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("snapshot.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("snapshot.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("snapshot request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Get(c *gin.Context) {
	companyID, err := tenant.Resolve(c, c.Query("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID := c.Param("id")
	role := strings.ToUpper(c.GetString(middleware.ContextRole))
	if role == access.RoleEmployee && employeeID != c.GetString(middleware.ContextEmployeeID) {
		h.writeServiceError(c, snapshoterrors.ErrForeignSnapshot)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
