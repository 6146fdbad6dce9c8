package events

import "time"

const (
	ScheduleAssignedTopic = "workforce.schedule.assigned.v1"
	ScheduleAssignedType  = "schedule.assigned"
)

type ScheduleAssignedEvent struct {
	EventType       string    `json:"event_type"`
	ScheduleID      string    `json:"schedule_id"`
	CompanyID       string    `json:"company_id"`
	Method          string    `json:"method"`
	ShiftsConfirmed int64     `json:"shifts_confirmed"`
	OccurredAt      time.Time `json:"occurred_at"`
}
