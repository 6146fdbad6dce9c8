package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"workcurb/internal/events"
	leaveerrors "workcurb/internal/leave/errors"
	"workcurb/internal/messaging/kafka"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error)
	Review(ctx context.Context, companyID, id string, req ReviewLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create leave requested",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	companyUUID, employeeUUID, startDate, endDate, err := validateCreateRequest(companyID, req)
	if err != nil {
		log.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		LeaveType:   strings.TrimSpace(req.LeaveType),
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
		AppliedDate: s.now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
		if err != nil {
			return apperror.Operational(err)
		}
		if !belongs {
			return leaveerrors.ErrEmployeeNotInCompany
		}

		if err := qtx.Create(ctx, l); err != nil {
			return apperror.Operational(err)
		}
		return nil
	})
	if err != nil {
		log.Warn("create leave failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*l), nil
}

// Review moves a pending request to approved or rejected. Repeating the same
// decision returns the stored row; a conflicting decision is rejected.
func (s *service) Review(ctx context.Context, companyID, id string, req ReviewLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	status := req.Status
	if status != StatusApproved && status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidReviewStatus
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(req.ReviewedBy); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidReviewerID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	var result LeaveRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		reviewed, err := qtx.ReviewPending(ctx, companyID, id, status, req.ReviewedBy, s.now())
		if err != nil {
			return apperror.Operational(err)
		}

		current, err := qtx.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrLeaveNotFound
			}
			return apperror.Operational(err)
		}
		result = *current

		if !reviewed {
			if current.Status == status {
				log.Info("review leave repeated", zap.String("leave_id", id), zap.String("status", status))
				return nil
			}
			return leaveerrors.ErrLeaveAlreadyReviewed.WithDetails(map[string]string{"current_status": current.Status})
		}

		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"leave_request",
			current.ID.String(),
			events.LeaveReviewedType,
			events.LeaveReviewedTopic,
			events.LeaveReviewedEvent{
				EventType:      events.LeaveReviewedType,
				LeaveRequestID: current.ID.String(),
				EmployeeID:     current.EmployeeID.String(),
				CompanyID:      current.CompanyID.String(),
				LeaveType:      current.LeaveType,
				StartDate:      current.StartDate.Format(dateLayout),
				EndDate:        current.EndDate.Format(dateLayout),
				Status:         current.Status,
				ReviewedBy:     req.ReviewedBy,
				OccurredAt:     s.now(),
			},
		)
		if err != nil {
			return apperror.Operational(err)
		}
		if err := s.outboxRepo.WithTx(tx).Create(ctx, &event); err != nil {
			return apperror.Operational(err)
		}
		return nil
	})
	if err != nil {
		log.Warn("review leave failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("review leave success",
		zap.String("leave_id", id),
		zap.String("status", result.Status),
	)
	return mapToResponse(result), nil
}

func (s *service) List(ctx context.Context, companyID, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, leaveerrors.ErrInvalidCompanyID
	}
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, leaveerrors.ErrInvalidEmployeeID
		}
	}

	leaves, err := s.repo.ListByCompany(ctx, companyID, employeeID)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return mapToListResponse(leaves), nil
}

func validateCreateRequest(companyID string, req CreateLeaveRequest) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if strings.TrimSpace(req.LeaveType) == "" {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrLeaveTypeRequired
	}
	if strings.TrimSpace(req.Reason) == "" {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrReasonRequired
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return companyUUID, employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		CompanyID:   l.CompanyID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveType:   l.LeaveType,
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		Reason:      l.Reason,
		Status:      l.Status,
		AppliedDate: l.AppliedDate.Format(time.RFC3339),
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedDate != nil {
		v := l.ReviewedDate.Format(time.RFC3339)
		resp.ReviewedDate = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
