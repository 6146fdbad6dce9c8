package company

import (
	"time"

	"github.com/google/uuid"
)

type CompanyEvent struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description *string    `gorm:"type:text"`
	EventDate   time.Time  `gorm:"type:date;not null"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

func (CompanyEvent) TableName() string {
	return "company_events"
}
