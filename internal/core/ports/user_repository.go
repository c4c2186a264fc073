package ports

import (
	"context"

	"github.com/recordhub/records-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
// Implementations return domain.ErrNotFound when no row matches and
// domain.ErrDuplicateKey when an id is already taken.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// Update overwrites every column of the row stored under id, including the
	// id column itself.
	Update(ctx context.Context, id int64, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}
