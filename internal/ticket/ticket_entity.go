package ticket

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeTicket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_tickets_company_employee"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_tickets_company_employee"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(50);not null;default:'General'"`
	Priority    string    `gorm:"type:varchar(20);not null;default:'Medium'"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Open'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EmployeeTicket) TableName() string {
	return "employee_tickets"
}
