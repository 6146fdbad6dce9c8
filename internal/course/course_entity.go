package course

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAssigned   = "Assigned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type TrainingCourse struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	DurationHours int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TrainingCourse) TableName() string {
	return "training_courses"
}

// EmployeeCourse is an assignment. At most one row exists per
// (employee, course).
type EmployeeCourse struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_courses_employee_course"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_courses_employee_course"`
	AssignedBy  uuid.UUID `gorm:"type:uuid;not null"`
	Progress    int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Assigned'"`
	AssignedAt  time.Time `gorm:"not null"`
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

func (EmployeeCourse) TableName() string {
	return "employee_courses"
}

// AssignmentRow is an assignment joined with its course.
type AssignmentRow struct {
	EmployeeCourse
	CourseTitle         string
	CourseDescription   string
	CourseDurationHours int
}
