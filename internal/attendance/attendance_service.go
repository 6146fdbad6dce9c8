package attendance

import (
	"context"
	"errors"
	"strings"
	"time"

	attendanceerrors "workcurb/internal/attendance/errors"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	SourceManual  = "MANUAL"
)

// RecentLimit is the number of sessions shown on the employee snapshot.
const RecentLimit = 30

// A clock in after 09:15 UTC counts as late.
const (
	lateHour   = 9
	lateMinute = 15
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (SessionResponse, error)
	ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (SessionResponse, error)
	List(ctx context.Context, companyID, employeeID string) ([]SessionResponse, error)
	Recent(ctx context.Context, companyID, employeeID string, limit int) ([]SessionResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) ClockIn(ctx context.Context, companyID, employeeID string, req ClockInRequest) (SessionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	companyUUID, employeeUUID, err := parseIDs(companyID, employeeID)
	if err != nil {
		return SessionResponse{}, err
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	status := StatusPresent
	if now.Hour() > lateHour || (now.Hour() == lateHour && now.Minute() > lateMinute) {
		status = StatusLate
	}
	source := strings.ToUpper(strings.TrimSpace(req.Source))
	if source == "" {
		source = SourceManual
	}

	row := &AttendanceSession{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		EmployeeID:  employeeUUID,
		SessionDate: today,
		ClockIn:     now,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      status,
		Source:      source,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, employeeID)
		if err != nil {
			return apperror.Operational(err)
		}
		if !belongs {
			return attendanceerrors.ErrEmployeeNotInCompany
		}

		_, err = qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
		switch {
		case err == nil:
			return attendanceerrors.ErrAlreadyClockedIn
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return apperror.Operational(err)
		}

		if err := qtx.Create(ctx, row); err != nil {
			if isUniqueViolation(err) {
				return attendanceerrors.ErrAlreadyClockedIn
			}
			return apperror.Operational(err)
		}
		return nil
	})
	if err != nil {
		log.Warn("clock in failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SessionResponse{}, err
	}

	log.Info("clock in success",
		zap.String("session_id", row.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return MapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, companyID, employeeID string, req ClockOutRequest) (SessionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, _, err := parseIDs(companyID, employeeID); err != nil {
		return SessionResponse{}, err
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	var row *AttendanceSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		found, err := qtx.FindByEmployeeAndDate(ctx, companyID, employeeID, today)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return attendanceerrors.ErrClockInNotFound
			}
			return apperror.Operational(err)
		}
		if found.ClockOut != nil {
			return attendanceerrors.ErrAlreadyClockedOut
		}

		found.ClockOut = &now
		found.UpdatedAt = now
		if req.Latitude != nil {
			found.Latitude = req.Latitude
		}
		if req.Longitude != nil {
			found.Longitude = req.Longitude
		}
		if req.Notes != nil {
			found.Notes = req.Notes
		}

		closed, err := qtx.CloseSession(ctx, found)
		if err != nil {
			return apperror.Operational(err)
		}
		if !closed {
			return attendanceerrors.ErrAlreadyClockedOut
		}
		row = found
		return nil
	})
	if err != nil {
		log.Warn("clock out failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SessionResponse{}, err
	}

	log.Info("clock out success",
		zap.String("session_id", row.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return MapToResponse(*row), nil
}

// List returns the company's sessions, or one employee's when employeeID is set.
func (s *service) List(ctx context.Context, companyID, employeeID string) ([]SessionResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, attendanceerrors.ErrInvalidCompanyID
	}
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	rows, err := s.repo.ListByEmployee(ctx, companyID, employeeID, 0)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return MapToResponses(rows), nil
}

// Recent returns at most limit sessions of one employee, newest first.
func (s *service) Recent(ctx context.Context, companyID, employeeID string, limit int) ([]SessionResponse, error) {
	if _, _, err := parseIDs(companyID, employeeID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEmployee(ctx, companyID, employeeID, limit)
	if err != nil {
		return nil, apperror.Operational(err)
	}
	return MapToResponses(rows), nil
}

func parseIDs(companyID, employeeID string) (uuid.UUID, uuid.UUID, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, attendanceerrors.ErrInvalidEmployeeID
	}
	return companyUUID, employeeUUID, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "uq_attendance_sessions_employee_day") ||
		strings.Contains(msg, "unique constraint failed")
}

func MapToResponse(a AttendanceSession) SessionResponse {
	resp := SessionResponse{
		ID:          a.ID.String(),
		CompanyID:   a.CompanyID.String(),
		EmployeeID:  a.EmployeeID.String(),
		SessionDate: a.SessionDate.Format("2006-01-02"),
		ClockIn:     a.ClockIn.Format(time.RFC3339),
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		Status:      a.Status,
		Source:      a.Source,
		Notes:       a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}

func MapToResponses(rows []AttendanceSession) []SessionResponse {
	res := make([]SessionResponse, len(rows))
	for i, r := range rows {
		res[i] = MapToResponse(r)
	}
	return res
}
