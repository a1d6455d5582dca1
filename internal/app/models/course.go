package models

import (
	"time"
)

// Course defines a unit of study scoped to exactly one program,
// based on the 'courses' table.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	CourseCode  string    `json:"course_code" db:"course_code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Term        string    `json:"term" db:"term"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	ProgramID   int64     `json:"program_id" db:"program_id"`
}
