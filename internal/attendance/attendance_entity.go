package attendance

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSession is one working day of an employee. The unique index
// allows a single session per employee per day.
type AttendanceSession struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_sessions_employee_day"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_sessions_employee_day"`
	SessionDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_sessions_employee_day"`
	ClockIn     time.Time `gorm:"not null"`
	ClockOut    *time.Time
	Latitude    *float64
	Longitude   *float64
	Status      string  `gorm:"type:varchar(20);not null;default:'PRESENT'"`
	Source      string  `gorm:"type:varchar(30);not null;default:'MANUAL'"`
	Notes       *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AttendanceSession) TableName() string {
	return "attendance_sessions"
}
