package course

import (
	"context"
	"errors"
	"strings"
	"time"

	courseerrors "workcurb/internal/course/errors"
	"workcurb/internal/events"
	"workcurb/internal/messaging/kafka"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxProgress = 100

//go:generate mockgen -source=course_service.go -destination=mock/course_service_mock.go -package=mock
type Service interface {
	CreateCourse(ctx context.Context, companyID string, req CreateCourseRequest) (CourseResponse, error)
	Assign(ctx context.Context, companyID string, req AssignCourseRequest) (AssignmentResponse, error)
	UpdateProgress(ctx context.Context, companyID string, req UpdateProgressRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("course.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("course.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:     l,
	}
}

func (s *service) CreateCourse(ctx context.Context, companyID string, req CreateCourseRequest) (CourseResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return CourseResponse{}, courseerrors.ErrInvalidCompanyID
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return CourseResponse{}, courseerrors.ErrTitleRequired
	}

	c := &TrainingCourse{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		DurationHours: req.DurationHours,
	}
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return CourseResponse{}, apperror.Operational(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("create course success",
		zap.String("course_id", c.ID.String()),
		zap.String("company_id", companyID),
	)
	return CourseResponse{
		ID:            c.ID.String(),
		CompanyID:     c.CompanyID.String(),
		Title:         c.Title,
		Description:   c.Description,
		DurationHours: c.DurationHours,
	}, nil
}

// Assign creates the assignment row. A second assignment of the same course
// is rejected by the unique index and reported as a conflict.
func (s *service) Assign(ctx context.Context, companyID string, req AssignCourseRequest) (AssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidEmployeeID
	}
	courseUUID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidCourseID
	}
	assignerUUID, err := uuid.Parse(req.AssignedBy)
	if err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidAssignerID
	}

	exists, err := s.repo.CourseExists(ctx, companyID, req.CourseID)
	if err != nil {
		return AssignmentResponse{}, apperror.Operational(err)
	}
	if !exists {
		return AssignmentResponse{}, courseerrors.ErrCourseNotFound
	}
	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, apperror.Operational(err)
	}
	if !belongs {
		return AssignmentResponse{}, courseerrors.ErrEmployeeNotInCompany
	}

	a := &EmployeeCourse{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		EmployeeID: employeeUUID,
		CourseID:   courseUUID,
		AssignedBy: assignerUUID,
		Progress:   0,
		Status:     StatusAssigned,
		AssignedAt: s.now(),
	}
	if err := s.repo.CreateAssignment(ctx, a); err != nil {
		mapped := mapAssignError(err)
		if errors.Is(mapped, courseerrors.ErrCourseAlreadyAssigned) {
			log.Info("course already assigned",
				zap.String("employee_id", req.EmployeeID),
				zap.String("course_id", req.CourseID),
			)
			return AssignmentResponse{}, mapped
		}
		log.Error("assign course failed", zap.Error(err))
		return AssignmentResponse{}, apperror.Operational(err)
	}

	log.Info("assign course success",
		zap.String("assignment_id", a.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("course_id", req.CourseID),
	)
	return mapToResponse(*a, nil), nil
}

func (s *service) UpdateProgress(ctx context.Context, companyID string, req UpdateProgressRequest) (AssignmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if req.IncrementPercent <= 0 || req.IncrementPercent > maxProgress {
		return AssignmentResponse{}, courseerrors.ErrInvalidIncrement
	}
	if _, err := uuid.Parse(companyID); err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(req.CourseID); err != nil {
		return AssignmentResponse{}, courseerrors.ErrInvalidCourseID
	}

	now := s.now()
	var updated EmployeeCourse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		affected, err := qtx.AddProgress(ctx, companyID, req.EmployeeID, req.CourseID, req.IncrementPercent, now)
		if err != nil {
			return apperror.Operational(err)
		}
		if affected == 0 {
			return courseerrors.ErrAssignmentNotFound
		}

		a, err := qtx.FindAssignment(ctx, companyID, req.EmployeeID, req.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return courseerrors.ErrAssignmentNotFound
			}
			return apperror.Operational(err)
		}
		updated = *a

		// completed_at only equals now when this statement completed the course
		if a.Status != StatusCompleted || a.CompletedAt == nil || !a.CompletedAt.Equal(now) {
			return nil
		}

		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"employee_course",
			a.ID.String(),
			events.CourseCompletedType,
			events.CourseCompletedTopic,
			events.CourseCompletedEvent{
				EventType:  events.CourseCompletedType,
				EmployeeID: req.EmployeeID,
				CourseID:   req.CourseID,
				CompanyID:  companyID,
				OccurredAt: now,
			},
		)
		if err != nil {
			return apperror.Operational(err)
		}
		if err := s.outboxRepo.WithTx(tx).Create(ctx, &event); err != nil {
			return apperror.Operational(err)
		}
		log.Info("course completed", zap.String("employee_id", req.EmployeeID), zap.String("course_id", req.CourseID))
		return nil
	})
	if err != nil {
		log.Warn("update course progress failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	return mapToResponse(updated, nil), nil
}

func (s *service) ListAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, courseerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, courseerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.ListAssignments(ctx, companyID, employeeID)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return MapAssignmentRows(rows), nil
}

// MapAssignmentRows converts joined rows to responses carrying course details.
func MapAssignmentRows(rows []AssignmentRow) []AssignmentResponse {
	resp := make([]AssignmentResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r.EmployeeCourse, &CourseSummary{
			Title:         r.CourseTitle,
			Description:   r.CourseDescription,
			DurationHours: r.CourseDurationHours,
		})
	}
	return resp
}

func mapToResponse(a EmployeeCourse, course *CourseSummary) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID.String(),
		CompanyID:  a.CompanyID.String(),
		EmployeeID: a.EmployeeID.String(),
		CourseID:   a.CourseID.String(),
		AssignedBy: a.AssignedBy.String(),
		Progress:   a.Progress,
		Status:     a.Status,
		AssignedAt: a.AssignedAt.Format(time.RFC3339),
		Course:     course,
	}
	if a.CompletedAt != nil {
		v := a.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}
