package schedule

type ShiftInput struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	ShiftDate  string `json:"shift_date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}

type CreateScheduleRequest struct {
	CompanyID     string       `json:"company_id"`
	Name          string       `json:"name" binding:"required"`
	WeekStartDate string       `json:"week_start_date" binding:"required"`
	WeekEndDate   string       `json:"week_end_date" binding:"required"`
	Shifts        []ShiftInput `json:"shifts" binding:"dive"`
}

type ShiftResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftDate  string `json:"shift_date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
}

type ScheduleResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	WeekStartDate string          `json:"week_start_date"`
	WeekEndDate   string          `json:"week_end_date"`
	AssignedAt    *string         `json:"assigned_at"`
	Shifts        []ShiftResponse `json:"shifts"`
}

type AssignResult struct {
	ScheduleID      string `json:"schedule_id"`
	Status          string `json:"status"`
	Method          string `json:"method"`
	ShiftsConfirmed int64  `json:"shifts_confirmed"`
}
