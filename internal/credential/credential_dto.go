package credential

import "workcurb/internal/employee"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
	CompanyID       string `json:"company_id" binding:"omitempty,uuid"`
}

type ChangePasswordResponse struct {
	Changed bool `json:"changed"`
}

type LoginResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
	IsAdmin  bool                      `json:"is_admin"`
}
