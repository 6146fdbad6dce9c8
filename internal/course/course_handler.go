package course

import (
	"net/http"

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
	l := zap.L().Named("course.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("course.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("course request failed",
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

func (h *Handler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	companyID, err := tenant.Resolve(c, req.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.CreateCourse(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	companyID, err := tenant.Resolve(c, req.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if req.AssignedBy == "" {
		req.AssignedBy = c.GetString(middleware.ContextEmployeeID)
	}

	resp, err := h.service.Assign(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	companyID, err := tenant.Resolve(c, req.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UpdateProgress(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	companyID, err := tenant.Resolve(c, c.Query("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListAssignments(c.Request.Context(), companyID, c.Query("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
