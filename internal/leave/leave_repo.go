package leave

import (
	"context"
	"time"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	ListByCompany(ctx context.Context, companyID, employeeID string) ([]LeaveRequest, error)
	ReviewPending(ctx context.Context, companyID, id, status, reviewedBy string, reviewedAt time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	return &l, err
}

// ListByCompany returns newest applications first. employeeID is optional.
func (r *repository) ListByCompany(ctx context.Context, companyID, employeeID string) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	leaves := make([]LeaveRequest, 0)
	err := db.Order("applied_date DESC").Find(&leaves).Error
	return leaves, err
}

// ReviewPending applies a decision only while the request is still pending.
// It reports whether this call made the transition.
func (r *repository) ReviewPending(ctx context.Context, companyID, id, status, reviewedBy string, reviewedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Where("status = ?", StatusPending).
		Updates(map[string]any{
			"status":        status,
			"reviewed_by":   reviewedBy,
			"reviewed_date": reviewedAt,
			"updated_at":    reviewedAt,
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
