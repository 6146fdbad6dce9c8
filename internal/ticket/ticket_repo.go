package ticket

import (
	"context"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=ticket_repo.go -destination=mock/ticket_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *EmployeeTicket) error
	ListByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeTicket, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *EmployeeTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) ListByEmployee(ctx context.Context, companyID, employeeID string) ([]EmployeeTicket, error) {
	tickets := make([]EmployeeTicket, 0)
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
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
