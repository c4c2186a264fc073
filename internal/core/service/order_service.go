package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

// OrderService manages orders. Dates arrive already parsed, so it only maps
// store errors and applies the id policy on update.
type OrderService struct {
	repo   ports.OrderRepository
	policy domain.IDPolicy
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, policy domain.IDPolicy, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, policy: policy, logger: logger}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceOrder, 0, err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceOrder, id, err)
	}
	return o, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, o domain.Order) error {
	if err := s.repo.Create(ctx, &o); err != nil {
		return domain.NewRecordError(domain.ResourceOrder, o.ID, err)
	}
	s.logger.Info().Int64("order_id", o.ID).Msg("order created")
	return nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int64, o domain.Order) error {
	newID, err := s.policy.Resolve(id, o.ID)
	if err != nil {
		return domain.MalformedInput(domain.ResourceOrder, err.Error())
	}
	o.ID = newID

	if err := s.repo.Update(ctx, id, &o); err != nil {
		return domain.NewRecordError(domain.ResourceOrder, conflictID(err, id, newID), err)
	}
	s.logger.Info().Int64("order_id", id).Int64("new_id", newID).Msg("order updated")
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.NewRecordError(domain.ResourceOrder, id, err)
	}
	s.logger.Info().Int64("order_id", id).Msg("order deleted")
	return nil
}
