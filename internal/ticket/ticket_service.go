package ticket

import (
	"context"
	"strings"
	"time"

	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"
	ticketerrors "workcurb/internal/ticket/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultCategory = "General"
	DefaultPriority = "Medium"
	StatusOpen      = "Open"
)

//go:generate mockgen -source=ticket_service.go -destination=mock/ticket_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateTicketRequest) (TicketResponse, error)
	List(ctx context.Context, companyID, employeeID string) ([]TicketResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ticket.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ticket.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateTicketRequest) (TicketResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(strings.TrimSpace(companyID))
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return TicketResponse{}, ticketerrors.ErrInvalidEmployeeID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return TicketResponse{}, ticketerrors.ErrTitleRequired
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyUUID.String(), employeeUUID.String())
	if err != nil {
		return TicketResponse{}, apperror.Operational(err)
	}
	if !belongs {
		return TicketResponse{}, ticketerrors.ErrEmployeeNotInCompany
	}

	t := &EmployeeTicket{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Category:    withDefault(req.Category, DefaultCategory),
		Priority:    withDefault(req.Priority, DefaultPriority),
		Status:      StatusOpen,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		log.Error("create ticket failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return TicketResponse{}, apperror.Operational(err)
	}

	log.Info("create ticket success",
		zap.String("ticket_id", t.ID.String()),
		zap.String("company_id", companyID),
		zap.String("category", t.Category),
		zap.String("priority", t.Priority),
	)
	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context, companyID, employeeID string) ([]TicketResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, ticketerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ticketerrors.ErrInvalidEmployeeID
	}

	tickets, err := s.repo.ListByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, apperror.Operational(err)
	}

	resp := make([]TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func withDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}

func mapToResponse(t EmployeeTicket) TicketResponse {
	return TicketResponse{
		ID:          t.ID.String(),
		CompanyID:   t.CompanyID.String(),
		EmployeeID:  t.EmployeeID.String(),
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
