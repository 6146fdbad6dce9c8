package notification

type BookingRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	CompanyName   string `json:"company_name"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Message       string `json:"message"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type OnboardingRequest struct {
	CompanyID  string  `json:"company_id"`
	FullName   string  `json:"full_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

// SubmissionResponse is returned for persisted bookings and contact messages.
type SubmissionResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	EmailSent bool   `json:"email_sent"`
}

type OnboardingResponse struct {
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	EmailSent  bool   `json:"email_sent"`
}

type bookingEmail struct {
	ID            string
	Name          string
	CompanyName   string
	PreferredDate string
	PreferredTime string
	Message       string
}

type contactEmail struct {
	ID      string
	Name    string
	Subject string
}

type onboardingEmail struct {
	FullName string
	Email    string
	Password string
}
