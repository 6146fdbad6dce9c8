package billing

type QuoteRequest struct {
	Plan  string `json:"plan" binding:"required"`
	Seats int    `json:"seats" binding:"required"`
}

type CreateOrderRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	ContactEmail  string `json:"contact_email" binding:"required,email"`
	Plan          string `json:"plan" binding:"required"`
	Seats         int    `json:"seats" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type QuoteResponse struct {
	Plan            string  `json:"plan"`
	Seats           int     `json:"seats"`
	UnitPrice       float64 `json:"unit_price"`
	Subtotal        float64 `json:"subtotal"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`
}

type OrderResponse struct {
	ID            string `json:"id"`
	CompanyName   string `json:"company_name"`
	ContactEmail  string `json:"contact_email"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	EmailSent     bool   `json:"email_sent"`
	QuoteResponse
}

type orderEmail struct {
	ID              string
	CompanyName     string
	Plan            string
	Seats           int
	UnitPrice       float64
	Subtotal        float64
	DiscountPercent float64
	DiscountAmount  float64
	Total           float64
	PaymentMethod   string
}
