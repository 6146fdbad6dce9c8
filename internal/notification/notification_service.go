package notification

import (
	"context"
	"strings"
	"time"

	"workcurb/internal/credential"
	"workcurb/internal/employee"
	notificationerrors "workcurb/internal/notification/errors"
	"workcurb/internal/observability/metrics"
	"workcurb/internal/providers/email"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	SendBookingConfirmation(ctx context.Context, req BookingRequest) (SubmissionResponse, error)
	SendContactAck(ctx context.Context, req ContactRequest) (SubmissionResponse, error)
	SendOnboardingCredentials(ctx context.Context, companyID string, createdBy string, req OnboardingRequest) (OnboardingResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	mailer       email.Provider
	metrics      *metrics.Metrics
	hashCost     int
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, mailer email.Provider, m *metrics.Metrics, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		mailer:       mailer,
		metrics:      m,
		hashCost:     bcrypt.DefaultCost,
		logger:       l,
	}
}

func (s *service) SendBookingConfirmation(ctx context.Context, req BookingRequest) (SubmissionResponse, error) {
	b := &CallBooking{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		CompanyName:   strings.TrimSpace(req.CompanyName),
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return SubmissionResponse{}, apperror.Operational(err)
	}

	resp := SubmissionResponse{
		ID:        b.ID.String(),
		Email:     b.Email,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	err := s.deliver(ctx, b.ID.String(), b.Email, "Your call is booked", email.TemplateBookingConfirmation, bookingEmail{
		ID:            b.ID.String(),
		Name:          b.Name,
		CompanyName:   b.CompanyName,
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Message:       b.Message,
	})
	if err != nil {
		return resp, err
	}
	resp.EmailSent = true
	return resp, nil
}

func (s *service) SendContactAck(ctx context.Context, req ContactRequest) (SubmissionResponse, error) {
	c := &ContactSubmission{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		return SubmissionResponse{}, apperror.Operational(err)
	}

	resp := SubmissionResponse{
		ID:        c.ID.String(),
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	err := s.deliver(ctx, c.ID.String(), c.Email, "We received your message", email.TemplateContactAcknowledgment, contactEmail{
		ID:      c.ID.String(),
		Name:    c.Name,
		Subject: c.Subject,
	})
	if err != nil {
		return resp, err
	}
	resp.EmailSent = true
	return resp, nil
}

// SendOnboardingCredentials creates the employee with a hashed password and
// emails the plaintext credentials once. The employee is kept when the email
// fails.
func (s *service) SendOnboardingCredentials(ctx context.Context, companyID string, createdBy string, req OnboardingRequest) (OnboardingResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return OnboardingResponse{}, notificationerrors.ErrInvalidCompanyID
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = employee.RoleEmployee
	}
	if role != employee.RoleEmployee && role != employee.RoleAdmin {
		return OnboardingResponse{}, notificationerrors.ErrInvalidRole
	}
	if err := credential.ValidatePasswordPolicy(req.Password); err != nil {
		return OnboardingResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return OnboardingResponse{}, apperror.Operational(err)
	}

	e := &employee.Employee{
		ID:           uuid.New(),
		CompanyID:    companyUUID,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,
	}
	if id, err := uuid.Parse(createdBy); err == nil {
		e.CreatedBy = &id
	}

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		mapped := employee.MapRepositoryError(err)
		if mapped == err {
			return OnboardingResponse{}, apperror.Operational(err)
		}
		return OnboardingResponse{}, mapped
	}
	log.Info("onboarding employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("company_id", companyID),
	)

	resp := OnboardingResponse{
		EmployeeID: e.ID.String(),
		CompanyID:  companyID,
		Email:      e.Email,
		FullName:   e.FullName,
		Role:       e.Role,
	}
	err = s.deliver(ctx, e.ID.String(), e.Email, "Your Workcurb account", email.TemplateOnboardingCredentials, onboardingEmail{
		FullName: e.FullName,
		Email:    e.Email,
		Password: req.Password,
	})
	if err != nil {
		return resp, err
	}
	resp.EmailSent = true
	return resp, nil
}

func (s *service) deliver(ctx context.Context, recordID, to, subject, templateName string, data any) error {
	err := s.mailer.SendTemplate(ctx, []string{to}, subject, templateName, data)
	s.metrics.RecordMailDelivery(templateName, err)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("email delivery failed",
			zap.String("template", templateName),
			zap.String("record_id", recordID),
			zap.Error(err),
		)
		return notificationerrors.ErrMailDeliveryFailed.
			WithCause(err).
			WithDetails(map[string]string{"record_id": recordID})
	}
	return nil
}
