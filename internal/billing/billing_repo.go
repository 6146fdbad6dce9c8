package billing

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=billing_repo.go -destination=mock/billing_repo_mock.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrder(ctx context.Context, o *Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}
