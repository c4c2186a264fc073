package ports

import (
	"context"

	"github.com/recordhub/records-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, id int64, o *domain.Order) error
	Delete(ctx context.Context, id int64) error
}
