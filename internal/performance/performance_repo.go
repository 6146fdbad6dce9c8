package performance

import (
	"context"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *PerformanceRating) error
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]PerformanceRating, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rating *PerformanceRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *repository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]PerformanceRating, error) {
	ratings := make([]PerformanceRating, 0)
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
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
