package models

import (
	"time"
)

// MessageStatus is the lifecycle state of a support message.
// The transition is monotonic: open -> resolved, never reversed.
type MessageStatus string

const (
	MessageStatusOpen     MessageStatus = "open"
	MessageStatusResolved MessageStatus = "resolved"
)

// Message defines a student-authored support ticket based on the 'messages' table
type Message struct {
	ID        int64         `json:"id" db:"id"`
	StudentID int64         `json:"studentId" db:"student_id"`
	AdminID   *int64        `json:"adminId,omitempty" db:"admin_id"`
	Subject   string        `json:"subject" db:"subject"`
	Message   string        `json:"message" db:"message"`
	Status    MessageStatus `json:"status" db:"status"`
	SentAt    time.Time     `json:"sentAt" db:"sent_at"`
}
