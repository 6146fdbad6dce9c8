package events

import "time"

const (
	CourseCompletedTopic = "workforce.course.completed.v1"
	CourseCompletedType  = "course.completed"
)

type CourseCompletedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	CourseID   string    `json:"course_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
