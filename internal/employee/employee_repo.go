package employee

import (
	"context"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindActiveByEmail(ctx context.Context, email, companyID string) ([]Employee, error)
	ExistsInCompany(ctx context.Context, companyID, id string) (bool, error)
	UpdatePasswordHash(ctx context.Context, companyID, id, currentHash, newHash string) (bool, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

// FindActiveByEmail lists active accounts with the email. companyID may be
// empty, in which case every tenant is searched.
func (r *repository) FindActiveByEmail(ctx context.Context, email, companyID string) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Where("is_active = ?", true)
	if companyID != "" {
		db = db.Scopes(tenant.Scope(companyID))
	}

	var rows []Employee
	err := db.Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsInCompany(ctx context.Context, companyID, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// UpdatePasswordHash swaps the hash only while it still equals currentHash,
// so two concurrent changes cannot both succeed.
func (r *repository) UpdatePasswordHash(ctx context.Context, companyID, id, currentHash, newHash string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Where("password_hash = ?", currentHash).
		Update("password_hash", newHash)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
