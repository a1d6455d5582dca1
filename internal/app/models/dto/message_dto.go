package dto

import (
	"time"

	"github.com/acadio/backend/internal/app/models"
)

// SendMessageRequest carries a new support ticket
type SendMessageRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendMessageResponse is returned when a ticket is created
type SendMessageResponse struct {
	Message string          `json:"message"`
	Data    *models.Message `json:"data"`
}

// MessageFilter holds the optional admin listing filters.
// Name and subject are case-insensitive substring matches; status is exact.
type MessageFilter struct {
	Name    string `form:"name"`
	Subject string `form:"subject"`
	Status  string `form:"status" binding:"omitempty,oneof=open resolved"`
}

// AdminMessageResponse is one row of the admin ticket listing,
// joined with the student's identity
type AdminMessageResponse struct {
	ID           int64                `json:"id"`
	Subject      string               `json:"subject"`
	Message      string               `json:"message"`
	Status       models.MessageStatus `json:"status"`
	SentAt       time.Time            `json:"sent_at"`
	StudentName  string               `json:"student_name"`
	StudentEmail string               `json:"student_email"`
}

// ResolveMessageResponse is returned when a ticket is resolved
type ResolveMessageResponse struct {
	Message string          `json:"message"`
	Data    *models.Message `json:"data"`
}
