package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Create validates in and stores it. A constraint violation is returned as
	// *contract.ValidationError and nothing is persisted.
	Create(ctx context.Context, in model.ContactCreateInput) (*model.ContactMessage, error)

	// List returns stored messages, optionally filtered and reordered for the inbox view.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}
