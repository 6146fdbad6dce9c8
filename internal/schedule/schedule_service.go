package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"workcurb/internal/events"
	"workcurb/internal/messaging/kafka"
	"workcurb/internal/observability/metrics"
	scheduleerrors "workcurb/internal/schedule/errors"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, createdBy string, req CreateScheduleRequest) (ScheduleResponse, error)
	Get(ctx context.Context, companyID, id string) (ScheduleResponse, error)
	Assign(ctx context.Context, companyID, id string) (AssignResult, error)
	ListEmployeeShifts(ctx context.Context, companyID, employeeID string) ([]ShiftResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	metrics    *metrics.Metrics
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, m *metrics.Metrics, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, createdBy string, req CreateScheduleRequest) (ScheduleResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidCompanyID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ScheduleResponse{}, scheduleerrors.ErrNameRequired
	}
	weekStart, err := parseDate(req.WeekStartDate)
	if err != nil {
		return ScheduleResponse{}, err
	}
	weekEnd, err := parseDate(req.WeekEndDate)
	if err != nil {
		return ScheduleResponse{}, err
	}
	if weekStart.After(weekEnd) {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidWeekRange
	}

	sched := &ShiftSchedule{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Name:          name,
		Status:        StatusDraft,
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
	}
	if id, err := uuid.Parse(createdBy); err == nil {
		sched.CreatedBy = &id
	}

	shifts := make([]EmployeeShift, 0, len(req.Shifts))
	employeeSet := make(map[string]struct{})
	for _, in := range req.Shifts {
		shift, err := buildShift(sched, in)
		if err != nil {
			return ScheduleResponse{}, err
		}
		shifts = append(shifts, shift)
		employeeSet[shift.EmployeeID.String()] = struct{}{}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if len(employeeSet) > 0 {
			ids := make([]string, 0, len(employeeSet))
			for id := range employeeSet {
				ids = append(ids, id)
			}
			count, err := qtx.CountEmployeesInCompany(ctx, companyID, ids)
			if err != nil {
				return apperror.Operational(err)
			}
			if count != int64(len(ids)) {
				return scheduleerrors.ErrInvalidEmployeeID.WithDetails(map[string]string{
					"reason": "one or more employees do not belong to this company",
				})
			}
		}

		if err := qtx.CreateSchedule(ctx, sched); err != nil {
			return apperror.Operational(err)
		}
		if err := qtx.CreateShifts(ctx, shifts); err != nil {
			return apperror.Operational(err)
		}
		return nil
	})
	if err != nil {
		log.Warn("create schedule failed", zap.String("company_id", companyID), zap.Error(err))
		return ScheduleResponse{}, err
	}

	log.Info("create schedule success",
		zap.String("schedule_id", sched.ID.String()),
		zap.Int("shifts", len(shifts)),
	)
	return mapToResponse(*sched, shifts), nil
}

func (s *service) Get(ctx context.Context, companyID, id string) (ScheduleResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
	}

	sched, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ScheduleResponse{}, apperror.Operational(err)
	}
	shifts, err := s.repo.ListShifts(ctx, companyID, id)
	if err != nil {
		return ScheduleResponse{}, apperror.Operational(err)
	}
	return mapToResponse(*sched, shifts), nil
}

func (s *service) ListEmployeeShifts(ctx context.Context, companyID, employeeID string) ([]ShiftResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, scheduleerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, scheduleerrors.ErrInvalidEmployeeID
	}

	shifts, err := s.repo.ListShiftsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return MapShifts(shifts), nil
}

// Assign moves a schedule to assigned and confirms its shifts. The store
// function is tried first; when it is missing or fails, the same two updates
// run in a transaction here. Both paths are safe to repeat, and a repeat on an
// assigned schedule confirms whatever shifts are still pending.
func (s *service) Assign(ctx context.Context, companyID, id string) (AssignResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return AssignResult{}, scheduleerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return AssignResult{}, scheduleerrors.ErrScheduleNotFound
	}

	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignResult{}, scheduleerrors.ErrScheduleNotFound
		}
		return AssignResult{}, apperror.Operational(err)
	}

	confirmed, err := s.assignViaFunction(ctx, companyID, id)
	if err == nil {
		return s.finishAssign(ctx, id, MethodRPC, confirmed), nil
	}
	log.Warn("assign_shift_schedule unavailable, using manual assignment",
		zap.String("schedule_id", id),
		zap.Error(err),
	)

	confirmed, err = s.assignManually(ctx, companyID, id)
	if err != nil {
		log.Error("manual schedule assignment failed", zap.String("schedule_id", id), zap.Error(err))
		return AssignResult{}, err
	}
	return s.finishAssign(ctx, id, MethodManual, confirmed), nil
}

func (s *service) assignViaFunction(ctx context.Context, companyID, id string) (int64, error) {
	var confirmed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).AssignViaFunction(ctx, companyID, id)
		if err != nil {
			return err
		}
		confirmed = n
		return s.writeAssignedEvent(ctx, tx, companyID, id, MethodRPC, n)
	})
	return confirmed, err
}

func (s *service) assignManually(ctx context.Context, companyID, id string) (int64, error) {
	now := s.now()
	var confirmed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.MarkAssigned(ctx, companyID, id, now); err != nil {
			return apperror.Operational(err)
		}

		n, err := qtx.ConfirmShifts(ctx, companyID, id, now)
		if err != nil {
			return scheduleerrors.ErrScheduleAssignmentIncomplete.
				WithCause(err).
				WithDetails(map[string]any{"schedule_id": id, "retryable": true})
		}
		confirmed = n

		if err := s.writeAssignedEvent(ctx, tx, companyID, id, MethodManual, n); err != nil {
			return apperror.Operational(err)
		}
		return nil
	})
	return confirmed, err
}

func (s *service) writeAssignedEvent(ctx context.Context, tx *gorm.DB, companyID, id, method string, confirmed int64) error {
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"shift_schedule",
		id,
		events.ScheduleAssignedType,
		events.ScheduleAssignedTopic,
		events.ScheduleAssignedEvent{
			EventType:       events.ScheduleAssignedType,
			ScheduleID:      id,
			CompanyID:       companyID,
			Method:          method,
			ShiftsConfirmed: confirmed,
			OccurredAt:      s.now(),
		},
	)
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, &event)
}

func (s *service) finishAssign(ctx context.Context, id, method string, confirmed int64) AssignResult {
	s.metrics.RecordScheduleAssignment(method)
	contextutil.GetLogger(ctx, s.logger).Info("assign schedule success",
		zap.String("schedule_id", id),
		zap.String("method", method),
		zap.Int64("shifts_confirmed", confirmed),
	)
	return AssignResult{
		ScheduleID:      id,
		Status:          StatusAssigned,
		Method:          method,
		ShiftsConfirmed: confirmed,
	}
}

func buildShift(sched *ShiftSchedule, in ShiftInput) (EmployeeShift, error) {
	employeeUUID, err := uuid.Parse(in.EmployeeID)
	if err != nil {
		return EmployeeShift{}, scheduleerrors.ErrInvalidEmployeeID
	}
	date, err := parseDate(in.ShiftDate)
	if err != nil {
		return EmployeeShift{}, err
	}
	if date.Before(sched.WeekStartDate) || date.After(sched.WeekEndDate) {
		return EmployeeShift{}, scheduleerrors.ErrShiftOutsideWeek
	}
	if _, err := time.Parse(timeLayout, in.StartTime); err != nil {
		return EmployeeShift{}, scheduleerrors.ErrInvalidTimeFormat
	}
	if _, err := time.Parse(timeLayout, in.EndTime); err != nil {
		return EmployeeShift{}, scheduleerrors.ErrInvalidTimeFormat
	}
	return EmployeeShift{
		ID:         uuid.New(),
		ScheduleID: sched.ID,
		CompanyID:  sched.CompanyID,
		EmployeeID: employeeUUID,
		ShiftDate:  date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Status:     ShiftScheduled,
	}, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, scheduleerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(s ShiftSchedule, shifts []EmployeeShift) ScheduleResponse {
	resp := ScheduleResponse{
		ID:            s.ID.String(),
		CompanyID:     s.CompanyID.String(),
		Name:          s.Name,
		Status:        s.Status,
		WeekStartDate: s.WeekStartDate.Format(dateLayout),
		WeekEndDate:   s.WeekEndDate.Format(dateLayout),
		Shifts:        MapShifts(shifts),
	}
	if s.AssignedAt != nil {
		v := s.AssignedAt.Format(time.RFC3339)
		resp.AssignedAt = &v
	}
	return resp
}

// MapShifts converts stored shifts to responses. The result is never nil.
func MapShifts(shifts []EmployeeShift) []ShiftResponse {
	resp := make([]ShiftResponse, len(shifts))
	for i, sh := range shifts {
		resp[i] = ShiftResponse{
			ID:         sh.ID.String(),
			EmployeeID: sh.EmployeeID.String(),
			ShiftDate:  sh.ShiftDate.Format(dateLayout),
			StartTime:  sh.StartTime,
			EndTime:    sh.EndTime,
			Status:     sh.Status,
		}
	}
	return resp
}
