package ticket

type CreateTicketRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required"`
	CompanyID   string `json:"company_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

type TicketResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
