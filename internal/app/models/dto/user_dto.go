package dto

import (
	"time"
)

// ProgramSummary is the nested program snippet on the profile response
type ProgramSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileResponse is returned by the /users/me endpoint.
// The program comes from the enrollment relation, the single source of truth.
type ProfileResponse struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Birthday  *time.Time      `json:"birthday,omitempty"`
	Username  string          `json:"username"`
	Role      string          `json:"role"`
	ProgramID *int64          `json:"program_id,omitempty"`
	Program   *ProgramSummary `json:"program"`
}

// StudentListItem is one row of the admin student listing
type StudentListItem struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	ProgramName *string `json:"programName,omitempty"`
}
