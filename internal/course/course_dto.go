package course

type CreateCourseRequest struct {
	CompanyID     string `json:"company_id"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration_hours" binding:"gte=0"`
}

type CourseResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration_hours"`
}

type AssignCourseRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CourseID   string `json:"course_id" binding:"required"`
	CompanyID  string `json:"company_id"`
	AssignedBy string `json:"assigned_by"`
}

type UpdateProgressRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	CourseID         string `json:"course_id" binding:"required"`
	CompanyID        string `json:"company_id"`
	IncrementPercent int    `json:"increment_percent"`
}

type AssignmentResponse struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"company_id"`
	EmployeeID  string         `json:"employee_id"`
	CourseID    string         `json:"course_id"`
	AssignedBy  string         `json:"assigned_by"`
	Progress    int            `json:"progress"`
	Status      string         `json:"status"`
	AssignedAt  string         `json:"assigned_at"`
	CompletedAt *string        `json:"completed_at"`
	Course      *CourseSummary `json:"course,omitempty"`
}

type CourseSummary struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DurationHours int    `json:"duration_hours"`
}
