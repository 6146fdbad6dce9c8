package schedule

import (
	"context"
	"time"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

const assignFunctionSQL = "SELECT assign_shift_schedule(?, ?)"

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateSchedule(ctx context.Context, s *ShiftSchedule) error
	CreateShifts(ctx context.Context, shifts []EmployeeShift) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*ShiftSchedule, error)
	ListShifts(ctx context.Context, companyID, scheduleID string) ([]EmployeeShift, error)
	ListShiftsByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeShift, error)
	AssignViaFunction(ctx context.Context, companyID, scheduleID string) (int64, error)
	MarkAssigned(ctx context.Context, companyID, scheduleID string, now time.Time) error
	ConfirmShifts(ctx context.Context, companyID, scheduleID string, now time.Time) (int64, error)
	CountEmployeesInCompany(ctx context.Context, companyID string, employeeIDs []string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateSchedule(ctx context.Context, s *ShiftSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) CreateShifts(ctx context.Context, shifts []EmployeeShift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&shifts).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*ShiftSchedule, error) {
	var s ShiftSchedule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) ListShifts(ctx context.Context, companyID, scheduleID string) ([]EmployeeShift, error) {
	shifts := make([]EmployeeShift, 0)
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("schedule_id = ?", scheduleID).
		Order("shift_date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *repository) ListShiftsByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeShift, error) {
	shifts := make([]EmployeeShift, 0)
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("shift_date ASC, start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// AssignViaFunction runs the store-side assign_shift_schedule function, which
// assigns the schedule and confirms its shifts in one statement. It returns
// the number of shifts the function confirmed.
func (r *repository) AssignViaFunction(ctx context.Context, companyID, scheduleID string) (int64, error) {
	var confirmed int64
	err := r.db.WithContext(ctx).Raw(assignFunctionSQL, scheduleID, companyID).Row().Scan(&confirmed)
	return confirmed, err
}

// MarkAssigned is unconditional so it can be re-run on an assigned schedule.
func (r *repository) MarkAssigned(ctx context.Context, companyID, scheduleID string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&ShiftSchedule{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", scheduleID).
		Updates(map[string]any{
			"status":      StatusAssigned,
			"assigned_at": gorm.Expr("COALESCE(assigned_at, ?)", now),
			"updated_at":  now,
		}).Error
}

func (r *repository) ConfirmShifts(ctx context.Context, companyID, scheduleID string, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&EmployeeShift{}).
		Scopes(tenant.Scope(companyID)).
		Where("schedule_id = ?", scheduleID).
		Where("status <> ?", ShiftConfirmed).
		Updates(map[string]any{
			"status":     ShiftConfirmed,
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountEmployeesInCompany(ctx context.Context, companyID string, employeeIDs []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("company_id = ?", companyID).
		Where("id IN ?", employeeIDs).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count, err
}
