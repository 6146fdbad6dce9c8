package billing_test

import (
	"context"
	"errors"
	"testing"

	"workcurb/internal/billing"
	billingerrors "workcurb/internal/billing/errors"
	"workcurb/internal/providers/email"
	emailMock "workcurb/internal/providers/email/mock"
	"workcurb/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBillingService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	req := billing.CreateOrderRequest{
		CompanyName:   "Northwind Clinics",
		ContactEmail:  "ops@northwind.example",
		Plan:          "starter",
		Seats:         12,
		PaymentMethod: "Card",
	}

	t.Run("success stores priced order then emails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := testdb.Open(t, &billing.Order{})
		mailer := emailMock.NewMockProvider(ctrl)
		mailer.EXPECT().
			SendTemplate(gomock.Any(), []string{"ops@northwind.example"}, gomock.Any(), email.TemplateOrderConfirmation, gomock.Any()).
			DoAndReturn(func(ctx context.Context, to []string, subject, name string, data any) error {
				body, err := email.Render(name, data)
				require.NoError(t, err)
				assert.Contains(t, body, "43.20")
				return nil
			})

		svc := billing.NewService(billing.NewRepository(db), mailer, nil)
		resp, err := svc.CreateOrder(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, billing.StatusPendingPayment, resp.Status)
		assert.Equal(t, "card", resp.PaymentMethod)
		assert.Equal(t, 48.0, resp.Subtotal)
		assert.Equal(t, 4.8, resp.DiscountAmount)
		assert.Equal(t, 43.2, resp.Total)
		assert.True(t, resp.EmailSent)

		var total float64
		require.NoError(t, db.Model(&billing.Order{}).Where("id = ?", resp.ID).Pluck("total", &total).Error)
		assert.InDelta(t, 43.2, total, 0.001)
	})

	t.Run("negative email failure keeps the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db := testdb.Open(t, &billing.Order{})
		mailer := emailMock.NewMockProvider(ctrl)
		mailer.EXPECT().
			SendTemplate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		svc := billing.NewService(billing.NewRepository(db), mailer, nil)
		resp, err := svc.CreateOrder(ctx, req)

		assert.ErrorIs(t, err, billingerrors.ErrMailDeliveryFailed)
		var count int64
		require.NoError(t, db.Model(&billing.Order{}).Where("id = ?", resp.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("negative payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := billing.NewService(billing.NewRepository(testdb.Open(t, &billing.Order{})), emailMock.NewMockProvider(ctrl), nil)
		bad := req
		bad.PaymentMethod = "crypto"

		_, err := svc.CreateOrder(ctx, bad)

		assert.ErrorIs(t, err, billingerrors.ErrInvalidPaymentMethod)
	})
}
