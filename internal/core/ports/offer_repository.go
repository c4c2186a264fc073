package ports

import (
	"context"

	"github.com/recordhub/records-api/internal/core/domain"
)

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	FindByID(ctx context.Context, id int64) (*domain.Offer, error)
	Create(ctx context.Context, o *domain.Offer) error
	Update(ctx context.Context, id int64, o *domain.Offer) error
	Delete(ctx context.Context, id int64) error
}
