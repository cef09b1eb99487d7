package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// Records are append-only: there is no update or delete path.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactCreateInput is the validated body of POST /api/contact.
// Field order is the order constraints are checked in.
type ContactCreateInput struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Subject string `json:"subject" validate:"required,min=3,max=120"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// ContactListOptions carries the optional inbox view parameters.
type ContactListOptions struct {
	// Query filters by case-insensitive substring over name, email, subject and message.
	Query string
	// NewestFirst reverses the natural newest-last order.
	NewestFirst bool
}
