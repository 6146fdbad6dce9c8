package notification_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workcurb/internal/middleware"
	"workcurb/internal/notification"
	notificationerrors "workcurb/internal/notification/errors"
	"workcurb/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeNotificationService struct {
	bookingFn    func(ctx context.Context, req notification.BookingRequest) (notification.SubmissionResponse, error)
	contactFn    func(ctx context.Context, req notification.ContactRequest) (notification.SubmissionResponse, error)
	onboardingFn func(ctx context.Context, companyID, createdBy string, req notification.OnboardingRequest) (notification.OnboardingResponse, error)
}

func (f *fakeNotificationService) SendBookingConfirmation(ctx context.Context, req notification.BookingRequest) (notification.SubmissionResponse, error) {
	return f.bookingFn(ctx, req)
}

func (f *fakeNotificationService) SendContactAck(ctx context.Context, req notification.ContactRequest) (notification.SubmissionResponse, error) {
	return f.contactFn(ctx, req)
}

func (f *fakeNotificationService) SendOnboardingCredentials(ctx context.Context, companyID, createdBy string, req notification.OnboardingRequest) (notification.OnboardingResponse, error) {
	return f.onboardingFn(ctx, companyID, createdBy, req)
}

func serve(h gin.HandlerFunc, body string, setup func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if setup != nil {
		setup(c)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func TestNotificationHandler_Booking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeNotificationService{bookingFn: func(ctx context.Context, req notification.BookingRequest) (notification.SubmissionResponse, error) {
			assert.Equal(t, "jane@acme.test", req.Email)
			return notification.SubmissionResponse{ID: "b1", Email: req.Email, EmailSent: true}, nil
		}}

		body := `{"name":"Jane","email":"jane@acme.test","preferred_date":"2026-11-02","preferred_time":"10:00"}`
		w := serve(notification.NewHandler(svc).Booking, body, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"email_sent":true`)
	})

	t.Run("negative mail failure is a bad gateway", func(t *testing.T) {
		svc := &fakeNotificationService{bookingFn: func(ctx context.Context, req notification.BookingRequest) (notification.SubmissionResponse, error) {
			return notification.SubmissionResponse{}, notificationerrors.ErrMailDeliveryFailed
		}}

		body := `{"name":"Jane","email":"jane@acme.test","preferred_date":"2026-11-02","preferred_time":"10:00"}`
		w := serve(notification.NewHandler(svc).Booking, body, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("negative missing preferred time", func(t *testing.T) {
		body := `{"name":"Jane","email":"jane@acme.test","preferred_date":"2026-11-02"}`
		w := serve(notification.NewHandler(&fakeNotificationService{}).Booking, body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_Contact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative invalid email", func(t *testing.T) {
		body := `{"name":"Jane","email":"jane","subject":"Hi","message":"Hello"}`
		w := serve(notification.NewHandler(&fakeNotificationService{}).Contact, body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is invalid")
	})
}

func TestNotificationHandler_Onboarding(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.NewString()
	adminID := uuid.NewString()
	body := `{"full_name":"New Hire","email":"hire@acme.test","password":"Str0ng!pass"}`

	t.Run("success uses the caller as creator", func(t *testing.T) {
		svc := &fakeNotificationService{onboardingFn: func(ctx context.Context, cid, createdBy string, req notification.OnboardingRequest) (notification.OnboardingResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, adminID, createdBy)
			return notification.OnboardingResponse{CompanyID: cid, Email: req.Email, EmailSent: true}, nil
		}}

		w := serve(notification.NewHandler(svc).Onboarding, body, func(c *gin.Context) {
			c.Set(tenant.ContextKey, companyID)
			c.Set(middleware.ContextEmployeeID, adminID)
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative foreign company", func(t *testing.T) {
		foreign := `{"company_id":"` + uuid.NewString() + `","full_name":"New Hire","email":"hire@acme.test","password":"Str0ng!pass"}`
		w := serve(notification.NewHandler(&fakeNotificationService{}).Onboarding, foreign, func(c *gin.Context) {
			c.Set(tenant.ContextKey, companyID)
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
