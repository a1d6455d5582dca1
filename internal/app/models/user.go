package models

import (
	"time"
)

// Role is the user's role in the system
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	Birthday  *time.Time `json:"birthday,omitempty" db:"birthday"`
	Username  string     `json:"username" db:"username"`
	Password  string     `json:"-" db:"password"` // hashed, excluded from JSON
	Role      Role       `json:"role" db:"role"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
