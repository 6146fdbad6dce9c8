package performance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workcurb/internal/middleware"
	"workcurb/internal/performance"
	performanceerrors "workcurb/internal/performance/errors"
	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRatingService struct {
	recordFn func(ctx context.Context, companyID string, req performance.RecordRatingRequest) (performance.RatingResponse, error)
}

func (f *fakeRatingService) Record(ctx context.Context, companyID string, req performance.RecordRatingRequest) (performance.RatingResponse, error) {
	return f.recordFn(ctx, companyID, req)
}

func (f *fakeRatingService) List(ctx context.Context, companyID, employeeID string) ([]performance.RatingResponse, error) {
	return []performance.RatingResponse{}, nil
}

func TestPerformanceHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()
	raterID := uuid.NewString()

	record := func(svc performance.Service, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(tenant.ContextKey, companyID)
		c.Set(middleware.ContextEmployeeID, raterID)
		c.Request = httptest.NewRequest(http.MethodPost, "/performance-ratings", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		performance.NewHandler(svc).Record(c)
		return w
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeRatingService{recordFn: func(ctx context.Context, cid string, req performance.RecordRatingRequest) (performance.RatingResponse, error) {
			assert.Equal(t, raterID, req.RatedBy)
			if assert.NotNil(t, req.Productivity) {
				assert.Equal(t, 8.0, *req.Productivity)
			}
			return performance.RatingResponse{OverallPercentage: 7}, nil
		}}

		w := record(svc, `{"employee_id":"`+uuid.NewString()+`","productivity":8,"quality":6,"teamwork":10,"punctuality":4}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"overall_percentage":7`)
	})

	t.Run("negative score out of range", func(t *testing.T) {
		svc := &fakeRatingService{recordFn: func(ctx context.Context, cid string, req performance.RecordRatingRequest) (performance.RatingResponse, error) {
			return performance.RatingResponse{}, performanceerrors.ErrScoreOutOfRange
		}}

		w := record(svc, `{"employee_id":"`+uuid.NewString()+`","productivity":80,"quality":6,"teamwork":10,"punctuality":4}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
