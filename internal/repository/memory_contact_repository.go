package repository

import (
	"context"
	"sync"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// MemoryContactRepository is an in-process ContactRepository for tests and
// local development. Contents are lost when the process exits.
type MemoryContactRepository struct {
	mu       sync.Mutex
	lastID   int64
	messages []model.ContactMessage
	now      func() time.Time
}

// NewMemoryContactRepository returns an empty in-memory repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{now: func() time.Time { return time.Now().UTC() }}
}

var (
	_ ContactRepository = (*MemoryContactRepository)(nil)
	_ DB                = (*MemoryContactRepository)(nil)
)

// Ping lets the health check run without a database; it fails only on a done context.
func (r *MemoryContactRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *MemoryContactRepository) Create(ctx context.Context, in model.ContactCreateInput) (*model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	msg := model.ContactMessage{
		ID:        r.lastID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: r.now(),
	}
	r.messages = append(r.messages, msg)
	return &msg, nil
}

// List returns copies so callers cannot mutate stored records.
func (r *MemoryContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ContactMessage, len(r.messages))
	for i := range r.messages {
		m := r.messages[i]
		out[i] = &m
	}
	return out, nil
}
