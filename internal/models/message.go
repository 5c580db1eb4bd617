package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus represents the read state of a contact message
type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
)

// Submission holds the four fields collected by the contact form
type Submission struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,contact_email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Message represents a stored contact form submission
type Message struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Subject       string        `json:"subject"`
	Message       string        `json:"message"`
	CreatedAt     time.Time     `json:"createdAt"`
	Status        MessageStatus `json:"status"`
	EmailNotified bool          `json:"emailNotified"`
	EmailSent     *bool         `json:"emailSent,omitempty"`
	Error         *string       `json:"error,omitempty"`
}

// NewMessage creates an unread, not yet notified message from a submission
func NewMessage(sub Submission, now time.Time) *Message {
	return &Message{
		ID:            uuid.New().String(),
		Name:          sub.Name,
		Email:         sub.Email,
		Subject:       sub.Subject,
		Message:       sub.Message,
		CreatedAt:     now.UTC(),
		Status:        MessageStatusUnread,
		EmailNotified: false,
	}
}

// ListOptions controls message listing for export
type ListOptions struct {
	Status MessageStatus
	Since  *time.Time
	Limit  int
}
