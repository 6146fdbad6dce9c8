package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft    = "draft"
	StatusAssigned = "assigned"

	ShiftScheduled = "scheduled"
	ShiftConfirmed = "confirmed"

	MethodRPC    = "rpc"
	MethodManual = "manual"
)

type ShiftSchedule struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'draft'"`
	WeekStartDate time.Time  `gorm:"type:date;not null"`
	WeekEndDate   time.Time  `gorm:"type:date;not null"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`
	AssignedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ShiftSchedule) TableName() string {
	return "shift_schedules"
}

type EmployeeShift struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_shifts_schedule"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_shifts_company_employee"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_shifts_company_employee"`
	ShiftDate  time.Time `gorm:"type:date;not null"`
	StartTime  string    `gorm:"type:varchar(5);not null"`
	EndTime    string    `gorm:"type:varchar(5);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (EmployeeShift) TableName() string {
	return "employee_shifts"
}
