package dto

// ProgramRequest carries program fields for create and update.
// Dates use the YYYY-MM-DD form the catalog screens submit.
type ProgramRequest struct {
	ProgramCode string  `json:"program_code" binding:"required,max=20"`
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description string  `json:"description" binding:"omitempty"`
	Term        string  `json:"term" binding:"required,max=50"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Fees        float64 `json:"fees" binding:"omitempty,min=0"`
}
