package service

import (
	"context"
	"slices"
	"strings"

	"github.com/portfolio/backend/internal/contract"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Create(ctx context.Context, in model.ContactCreateInput) (*model.ContactMessage, error) {
	if err := contract.Validate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// List returns the repository result untouched when opts is zero. Filtering
// and ordering happen here so the store stays a plain append/scan facade.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(opts.Query)); q != "" {
		messages = slices.DeleteFunc(messages, func(m *model.ContactMessage) bool {
			return !matches(m, q)
		})
	}
	if opts.NewestFirst {
		slices.Reverse(messages)
	}
	return messages, nil
}

func matches(m *model.ContactMessage, q string) bool {
	for _, field := range []string{m.Name, m.Email, m.Subject, m.Message} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
