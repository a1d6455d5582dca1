package models

import (
	"time"
)

// ProgramEnrollment is a row in the 'users_programs' relation.
// A user holds at most one row here at any time.
type ProgramEnrollment struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	ProgramID    int64     `json:"programId" db:"program_id"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}

// CourseEnrollment is a row in the 'users_courses' relation.
// It is only valid while the user is enrolled in the course's owning program.
type CourseEnrollment struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}
