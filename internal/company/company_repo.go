package company

import (
	"context"

	"workcurb/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	CreateEvent(ctx context.Context, e *CompanyEvent) error
	ListEvents(ctx context.Context, companyID string) ([]CompanyEvent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEvent(ctx context.Context, e *CompanyEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ListEvents orders by event_date, newest first.
func (r *repository) ListEvents(ctx context.Context, companyID string) ([]CompanyEvent, error) {
	events := make([]CompanyEvent, 0)
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("event_date DESC, created_at DESC").
		Find(&events).Error
	return events, err
}
