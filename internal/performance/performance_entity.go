package performance

import (
	"time"

	"github.com/google/uuid"
)

type PerformanceRating struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_ratings_company_employee"`
	EmployeeID        uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_ratings_company_employee"`
	RatedBy           uuid.UUID `gorm:"type:uuid;not null"`
	Productivity      float64   `gorm:"type:numeric(5,2);not null"`
	Quality           float64   `gorm:"type:numeric(5,2);not null"`
	Teamwork          float64   `gorm:"type:numeric(5,2);not null"`
	Punctuality       float64   `gorm:"type:numeric(5,2);not null"`
	OverallPercentage float64   `gorm:"type:numeric(5,2);not null"`
	Comments          string    `gorm:"type:text"`
	CreatedAt         time.Time
}

func (PerformanceRating) TableName() string {
	return "performance_ratings"
}
