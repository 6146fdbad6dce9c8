package attendance

import (
	"net/http"
	"strconv"
	"strings"

	"workcurb/internal/access"
	"workcurb/internal/middleware"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/response"
	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, appErr.Code, appErr.Message, nil)
}

// actorEmployee prefers the authenticated employee over the request body.
func actorEmployee(c *gin.Context, requested string) string {
	if id := c.GetString(middleware.ContextEmployeeID); id != "" {
		return id
	}
	return requested
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	companyID, err := tenant.Resolve(c, req.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), companyID, actorEmployee(c, req.EmployeeID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	companyID, err := tenant.Resolve(c, req.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), companyID, actorEmployee(c, req.EmployeeID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// List is paginated. Employees only ever see their own sessions.
func (h *Handler) List(c *gin.Context) {
	companyID, err := tenant.Resolve(c, c.Query("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID := c.Query("employee_id")
	role := strings.ToUpper(strings.TrimSpace(c.GetString(middleware.ContextRole)))
	if role == access.RoleEmployee {
		employeeID = c.GetString(middleware.ContextEmployeeID)
	}

	resp, err := h.service.List(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}
