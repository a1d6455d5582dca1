package models

import (
	"time"
)

// Program defines an academic program based on the 'programs' table.
// A program owns zero or more courses and carries its own enrollment relation.
type Program struct {
	ID          int64     `json:"id" db:"id"`
	ProgramCode string    `json:"program_code" db:"program_code"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Term        string    `json:"term" db:"term"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	Fees        float64   `json:"fees" db:"fees"`
}
