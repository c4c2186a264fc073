package ports

import (
	"context"

	"github.com/recordhub/records-api/internal/core/domain"
)

// Services return *domain.RecordError for every failure so the transport layer
// can tell which resource and id were involved.

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.User) error
	// UpdateUser replaces the user stored under id with u. What happens to u.ID
	// depends on the configured domain.IDPolicy.
	UpdateUser(ctx context.Context, id int64, u domain.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CreateOrder(ctx context.Context, o domain.Order) error
	UpdateOrder(ctx context.Context, id int64, o domain.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type OfferService interface {
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id int64) (*domain.Offer, error)
	CreateOffer(ctx context.Context, o domain.Offer) error
	UpdateOffer(ctx context.Context, id int64, o domain.Offer) error
	DeleteOffer(ctx context.Context, id int64) error
}
