package events

import "time"

const (
	LeaveReviewedTopic = "workforce.leave.reviewed.v1"
	LeaveReviewedType  = "leave.reviewed"
)

type LeaveReviewedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	CompanyID      string    `json:"company_id"`
	LeaveType      string    `json:"leave_type"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Status         string    `json:"status"`
	ReviewedBy     string    `json:"reviewed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
