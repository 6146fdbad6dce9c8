package snapshot

import (
	"context"

	"workcurb/internal/attendance"
	"workcurb/internal/company"
	"workcurb/internal/course"
	"workcurb/internal/employee"
	"workcurb/internal/leave"
	"workcurb/internal/performance"
	"workcurb/internal/schedule"
	"workcurb/internal/shared/contextutil"
	"workcurb/internal/ticket"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProfileReader interface {
	GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
}

type ShiftReader interface {
	ListEmployeeShifts(ctx context.Context, companyID, employeeID string) ([]schedule.ShiftResponse, error)
}

type AttendanceReader interface {
	Recent(ctx context.Context, companyID, employeeID string, limit int) ([]attendance.SessionResponse, error)
}

type TicketReader interface {
	List(ctx context.Context, companyID, employeeID string) ([]ticket.TicketResponse, error)
}

type LeaveReader interface {
	List(ctx context.Context, companyID, employeeID string) ([]leave.LeaveResponse, error)
}

type RatingReader interface {
	List(ctx context.Context, companyID, employeeID string) ([]performance.RatingResponse, error)
}

type CourseReader interface {
	ListAssignments(ctx context.Context, companyID, employeeID string) ([]course.AssignmentResponse, error)
}

type EventReader interface {
	ListEvents(ctx context.Context, companyID string) ([]company.EventResponse, error)
}

// Readers are the sources a snapshot is assembled from. The feature services
// satisfy them directly.
type Readers struct {
	Profiles   ProfileReader
	Shifts     ShiftReader
	Attendance AttendanceReader
	Tickets    TicketReader
	Leave      LeaveReader
	Ratings    RatingReader
	Courses    CourseReader
	Events     EventReader
}

//go:generate mockgen -source=snapshot_service.go -destination=mock/snapshot_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID, employeeID string) (EmployeeSnapshot, error)
}

type service struct {
	readers Readers
	logger  *zap.Logger
}

func NewService(readers Readers, logger ...*zap.Logger) Service {
	l := zap.L().Named("snapshot.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("snapshot.service")
	}
	return &service{readers: readers, logger: l}
}

// Get runs the eight reads concurrently. The first failure cancels the
// others and fails the whole snapshot.
func (s *service) Get(ctx context.Context, companyID, employeeID string) (EmployeeSnapshot, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var snap EmployeeSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.readers.Profiles.GetByID(gctx, companyID, employeeID)
		snap.Profile = p
		return err
	})
	g.Go(func() (err error) {
		snap.Shifts, err = s.readers.Shifts.ListEmployeeShifts(gctx, companyID, employeeID)
		return err
	})
	g.Go(func() (err error) {
		snap.Attendance, err = s.readers.Attendance.Recent(gctx, companyID, employeeID, attendance.RecentLimit)
		return err
	})
	g.Go(func() (err error) {
		snap.Tickets, err = s.readers.Tickets.List(gctx, companyID, employeeID)
		return err
	})
	g.Go(func() (err error) {
		snap.LeaveRequests, err = s.readers.Leave.List(gctx, companyID, employeeID)
		return err
	})
	g.Go(func() (err error) {
		snap.Ratings, err = s.readers.Ratings.List(gctx, companyID, employeeID)
		return err
	})
	g.Go(func() (err error) {
		snap.Courses, err = s.readers.Courses.ListAssignments(gctx, companyID, employeeID)
		return err
	})
	g.Go(func() (err error) {
		snap.Events, err = s.readers.Events.ListEvents(gctx, companyID)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Warn("employee snapshot failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return EmployeeSnapshot{}, err
	}

	snap.Shifts = orEmpty(snap.Shifts)
	snap.Attendance = orEmpty(snap.Attendance)
	snap.Tickets = orEmpty(snap.Tickets)
	snap.LeaveRequests = orEmpty(snap.LeaveRequests)
	snap.Ratings = orEmpty(snap.Ratings)
	snap.Courses = orEmpty(snap.Courses)
	snap.Events = orEmpty(snap.Events)

	log.Debug("employee snapshot assembled",
		zap.String("employee_id", employeeID),
		zap.Int("shifts", len(snap.Shifts)),
		zap.Int("attendance", len(snap.Attendance)),
	)
	return snap, nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
