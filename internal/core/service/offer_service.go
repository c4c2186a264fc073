package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

type OfferService struct {
	repo   ports.OfferRepository
	policy domain.IDPolicy
	logger zerolog.Logger
}

func NewOfferService(repo ports.OfferRepository, policy domain.IDPolicy, logger zerolog.Logger) *OfferService {
	return &OfferService{repo: repo, policy: policy, logger: logger}
}

func (s *OfferService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceOffer, 0, err)
	}
	return offers, nil
}

func (s *OfferService) GetOffer(ctx context.Context, id int64) (*domain.Offer, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceOffer, id, err)
	}
	return o, nil
}

func (s *OfferService) CreateOffer(ctx context.Context, o domain.Offer) error {
	if err := s.repo.Create(ctx, &o); err != nil {
		return domain.NewRecordError(domain.ResourceOffer, o.ID, err)
	}
	s.logger.Info().Int64("offer_id", o.ID).Msg("offer created")
	return nil
}

func (s *OfferService) UpdateOffer(ctx context.Context, id int64, o domain.Offer) error {
	newID, err := s.policy.Resolve(id, o.ID)
	if err != nil {
		return domain.MalformedInput(domain.ResourceOffer, err.Error())
	}
	o.ID = newID

	if err := s.repo.Update(ctx, id, &o); err != nil {
		return domain.NewRecordError(domain.ResourceOffer, conflictID(err, id, newID), err)
	}
	s.logger.Info().Int64("offer_id", id).Int64("new_id", newID).Msg("offer updated")
	return nil
}

func (s *OfferService) DeleteOffer(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.NewRecordError(domain.ResourceOffer, id, err)
	}
	s.logger.Info().Int64("offer_id", id).Msg("offer deleted")
	return nil
}
