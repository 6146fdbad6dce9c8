package company

type CreateEventRequest struct {
	CompanyID   string  `json:"company_id"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	EventDate   string  `json:"event_date" binding:"required"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	EventDate   string  `json:"event_date"`
	CreatedBy   *string `json:"created_by,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
