package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact messages. Implementations assign ID and
// CreatedAt and never mutate or delete a stored record.
type ContactRepository interface {
	Create(ctx context.Context, in model.ContactCreateInput) (*model.ContactMessage, error)
	// List returns every stored message in ascending ID order.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
