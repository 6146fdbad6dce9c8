package email

import "context"

const (
	TemplateBookingConfirmation   = "booking_confirmation"
	TemplateContactAcknowledgment = "contact_ack"
	TemplateOnboardingCredentials = "onboarding_credentials"
	TemplateOrderConfirmation     = "order_confirmation"
	TemplateLeaveReviewed         = "leave_reviewed"
)

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock
type Provider interface {
	Send(ctx context.Context, to []string, subject string, htmlBody string) error
	SendTemplate(ctx context.Context, to []string, subject string, templateName string, data any) error
}

type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, to []string, subject string, htmlBody string) error {
	return nil
}

func (p *NoOpProvider) SendTemplate(ctx context.Context, to []string, subject string, templateName string, data any) error {
	return nil
}
