package attendance

import (
	"context"
	"time"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *AttendanceSession) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceSession, error)
	ListByEmployee(ctx context.Context, companyID, employeeID string, limit int) ([]AttendanceSession, error)
	CloseSession(ctx context.Context, a *AttendanceSession) (bool, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, a *AttendanceSession) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*AttendanceSession, error) {
	var a AttendanceSession
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("session_date = ?", date).
		First(&a).Error
	return &a, err
}

// ListByEmployee returns sessions newest first. An empty employeeID lists the
// whole company; limit <= 0 means no limit.
func (r *repository) ListByEmployee(ctx context.Context, companyID, employeeID string, limit int) ([]AttendanceSession, error) {
	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}
	if limit > 0 {
		db = db.Limit(limit)
	}

	rows := make([]AttendanceSession, 0)
	err := db.Order("session_date DESC, clock_in DESC").Find(&rows).Error
	return rows, err
}

// CloseSession sets clock_out only while the session is still open.
func (r *repository) CloseSession(ctx context.Context, a *AttendanceSession) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&AttendanceSession{}).
		Scopes(tenant.Scope(a.CompanyID.String())).
		Where("id = ?", a.ID).
		Where("clock_out IS NULL").
		Updates(map[string]any{
			"clock_out":  a.ClockOut,
			"latitude":   a.Latitude,
			"longitude":  a.Longitude,
			"notes":      a.Notes,
			"updated_at": a.UpdatedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
