package notification

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	CreateBooking(ctx context.Context, b *CallBooking) error
	CreateContact(ctx context.Context, c *ContactSubmission) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b *CallBooking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) CreateContact(ctx context.Context, c *ContactSubmission) error {
	return r.db.WithContext(ctx).Create(c).Error
}
