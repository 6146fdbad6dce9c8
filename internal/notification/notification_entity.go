package notification

import (
	"time"

	"github.com/google/uuid"
)

type CallBooking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(50)"`
	CompanyName   string    `gorm:"type:varchar(255)"`
	PreferredDate string    `gorm:"type:varchar(10);not null"`
	PreferredTime string    `gorm:"type:varchar(20);not null"`
	Message       string    `gorm:"type:text"`
	CreatedAt     time.Time
}

func (CallBooking) TableName() string {
	return "call_bookings"
}

type ContactSubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
