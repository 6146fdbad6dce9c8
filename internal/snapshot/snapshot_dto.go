package snapshot

import (
	"workcurb/internal/attendance"
	"workcurb/internal/company"
	"workcurb/internal/course"
	"workcurb/internal/employee"
	"workcurb/internal/leave"
	"workcurb/internal/performance"
	"workcurb/internal/schedule"
	"workcurb/internal/ticket"
)

// EmployeeSnapshot is the dashboard view of one employee. Every list is
// encoded as an array, never null.
type EmployeeSnapshot struct {
	Profile       employee.EmployeeResponse    `json:"profile"`
	Shifts        []schedule.ShiftResponse     `json:"shifts"`
	Attendance    []attendance.SessionResponse `json:"attendance"`
	Tickets       []ticket.TicketResponse      `json:"tickets"`
	LeaveRequests []leave.LeaveResponse        `json:"leave_requests"`
	Ratings       []performance.RatingResponse `json:"ratings"`
	Courses       []course.AssignmentResponse  `json:"courses"`
	Events        []company.EventResponse      `json:"events"`
}
