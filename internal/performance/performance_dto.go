package performance

// Scores are pointers so that an omitted score is told apart from a zero.
type RecordRatingRequest struct {
	EmployeeID   string   `json:"employee_id" binding:"required"`
	CompanyID    string   `json:"company_id"`
	RatedBy      string   `json:"rated_by"`
	Productivity *float64 `json:"productivity"`
	Quality      *float64 `json:"quality"`
	Teamwork     *float64 `json:"teamwork"`
	Punctuality  *float64 `json:"punctuality"`
	Comments     string   `json:"comments"`
}

type RatingResponse struct {
	ID                string  `json:"id"`
	CompanyID         string  `json:"company_id"`
	EmployeeID        string  `json:"employee_id"`
	RatedBy           string  `json:"rated_by"`
	Productivity      float64 `json:"productivity"`
	Quality           float64 `json:"quality"`
	Teamwork          float64 `json:"teamwork"`
	Punctuality       float64 `json:"punctuality"`
	OverallPercentage float64 `json:"overall_percentage"`
	Comments          string  `json:"comments,omitempty"`
	CreatedAt         string  `json:"created_at"`
}
