package billing

import (
	"time"

	"github.com/google/uuid"
)

const StatusPendingPayment = "pending_payment"

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName     string    `gorm:"type:varchar(255);not null"`
	ContactEmail    string    `gorm:"type:varchar(255);not null"`
	Plan            string    `gorm:"type:varchar(30);not null"`
	Seats           int       `gorm:"not null"`
	UnitPrice       float64   `gorm:"type:numeric(10,2);not null"`
	Subtotal        float64   `gorm:"type:numeric(12,2);not null"`
	DiscountPercent float64   `gorm:"type:numeric(5,2);not null"`
	DiscountAmount  float64   `gorm:"type:numeric(12,2);not null"`
	Total           float64   `gorm:"type:numeric(12,2);not null"`
	PaymentMethod   string    `gorm:"type:varchar(30);not null"`
	Status          string    `gorm:"type:varchar(30);not null;default:'pending_payment'"`
	CreatedAt       time.Time
}

func (Order) TableName() string {
	return "orders"
}
