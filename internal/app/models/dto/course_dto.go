package dto

// CourseRequest carries course fields for create and update
type CourseRequest struct {
	CourseCode  string `json:"course_code" binding:"required,max=20"`
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"omitempty"`
	Term        string `json:"term" binding:"required,max=50"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	ProgramID   int64  `json:"program_id" binding:"required,min=1"`
}
