package billing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workcurb/internal/billing"
	billingerrors "workcurb/internal/billing/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeBillingService struct {
	quoteFn func(ctx context.Context, req billing.QuoteRequest) (billing.QuoteResponse, error)
	orderFn func(ctx context.Context, req billing.CreateOrderRequest) (billing.OrderResponse, error)
}

func (f *fakeBillingService) Quote(ctx context.Context, req billing.QuoteRequest) (billing.QuoteResponse, error) {
	return f.quoteFn(ctx, req)
}

func (f *fakeBillingService) CreateOrder(ctx context.Context, req billing.CreateOrderRequest) (billing.OrderResponse, error) {
	return f.orderFn(ctx, req)
}

func TestBillingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeBillingService{
		quoteFn: func(ctx context.Context, req billing.QuoteRequest) (billing.QuoteResponse, error) {
			return billing.Quote(req.Plan, req.Seats)
		},
		orderFn: func(ctx context.Context, req billing.CreateOrderRequest) (billing.OrderResponse, error) {
			return billing.OrderResponse{}, billingerrors.ErrInvalidPaymentMethod
		},
	}
	r := gin.New()
	billing.RegisterRoutes(r.Group("/api/v1"), billing.NewHandler(svc), func(c *gin.Context) { c.Next() })

	t.Run("quote", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/quote", strings.NewReader(`{"plan":"professional","seats":10}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":72`)
	})

	t.Run("negative unknown plan", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/quote", strings.NewReader(`{"plan":"platinum","seats":3}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative order with bad email", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"company_name":"Acme","contact_email":"not-an-email","plan":"starter","seats":2,"payment_method":"card"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "is invalid")
	})

	t.Run("negative payment method", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"company_name":"Acme","contact_email":"ops@acme.test","plan":"starter","seats":2,"payment_method":"crypto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
