package billing

import (
	"context"
	"strings"
	"time"

	billingerrors "workcurb/internal/billing/errors"
	"workcurb/internal/observability/metrics"
	"workcurb/internal/providers/email"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var paymentMethods = map[string]bool{
	"card":          true,
	"bank_transfer": true,
	"invoice":       true,
}

//go:generate mockgen -source=billing_service.go -destination=mock/billing_service_mock.go -package=mock
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (QuoteResponse, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
}

type service struct {
	repo    Repository
	mailer  email.Provider
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewService(repo Repository, mailer email.Provider, m *metrics.Metrics, logger ...*zap.Logger) Service {
	l := zap.L().Named("billing.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("billing.service")
	}
	return &service{repo: repo, mailer: mailer, metrics: m, logger: l}
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (QuoteResponse, error) {
	return Quote(req.Plan, req.Seats)
}

// CreateOrder prices the order server side, stores it as pending payment and
// then emails the confirmation. A failed email does not undo the order.
func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	quote, err := Quote(req.Plan, req.Seats)
	if err != nil {
		return OrderResponse{}, err
	}
	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if !paymentMethods[method] {
		return OrderResponse{}, billingerrors.ErrInvalidPaymentMethod
	}

	o := &Order{
		ID:              uuid.New(),
		CompanyName:     strings.TrimSpace(req.CompanyName),
		ContactEmail:    strings.TrimSpace(req.ContactEmail),
		Plan:            quote.Plan,
		Seats:           quote.Seats,
		UnitPrice:       quote.UnitPrice,
		Subtotal:        quote.Subtotal,
		DiscountPercent: quote.DiscountPercent,
		DiscountAmount:  quote.DiscountAmount,
		Total:           quote.Total,
		PaymentMethod:   method,
		Status:          StatusPendingPayment,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		log.Error("create order failed", zap.Error(err))
		return OrderResponse{}, apperror.Operational(err)
	}
	log.Info("create order success",
		zap.String("order_id", o.ID.String()),
		zap.String("plan", o.Plan),
		zap.Int("seats", o.Seats),
		zap.Float64("total", o.Total),
	)

	resp := OrderResponse{
		ID:            o.ID.String(),
		CompanyName:   o.CompanyName,
		ContactEmail:  o.ContactEmail,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		QuoteResponse: quote,
	}

	err = s.mailer.SendTemplate(ctx, []string{o.ContactEmail}, "Your Workcurb order "+o.ID.String(), email.TemplateOrderConfirmation, orderEmail{
		ID:              o.ID.String(),
		CompanyName:     o.CompanyName,
		Plan:            o.Plan,
		Seats:           o.Seats,
		UnitPrice:       o.UnitPrice,
		Subtotal:        o.Subtotal,
		DiscountPercent: o.DiscountPercent,
		DiscountAmount:  o.DiscountAmount,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
	})
	s.metrics.RecordMailDelivery(email.TemplateOrderConfirmation, err)
	if err != nil {
		log.Error("order confirmation email failed", zap.String("order_id", o.ID.String()), zap.Error(err))
		return resp, billingerrors.ErrMailDeliveryFailed.
			WithCause(err).
			WithDetails(map[string]string{"record_id": o.ID.String()})
	}
	resp.EmailSent = true
	return resp, nil
}
