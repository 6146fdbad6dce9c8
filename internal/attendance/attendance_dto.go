package attendance

type ClockInRequest struct {
	EmployeeID string   `json:"employee_id"`
	CompanyID  string   `json:"company_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Source     string   `json:"source"`
	Notes      *string  `json:"notes"`
}

type ClockOutRequest struct {
	EmployeeID string   `json:"employee_id"`
	CompanyID  string   `json:"company_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Notes      *string  `json:"notes"`
}

type SessionResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	EmployeeID  string   `json:"employee_id"`
	SessionDate string   `json:"session_date"`
	ClockIn     string   `json:"clock_in"`
	ClockOut    *string  `json:"clock_out,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Status      string   `json:"status"`
	Source      string   `json:"source"`
	Notes       *string  `json:"notes,omitempty"`
}
