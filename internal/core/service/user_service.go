package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	policy domain.IDPolicy
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, policy domain.IDPolicy, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, policy: policy, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceUser, 0, err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.NewRecordError(domain.ResourceUser, id, err)
	}
	return u, nil
}

func (s *UserService) CreateUser(ctx context.Context, u domain.User) error {
	if err := s.repo.Create(ctx, &u); err != nil {
		return domain.NewRecordError(domain.ResourceUser, u.ID, err)
	}
	s.logger.Info().Int64("user_id", u.ID).Msg("user created")
	return nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, u domain.User) error {
	newID, err := s.policy.Resolve(id, u.ID)
	if err != nil {
		return domain.MalformedInput(domain.ResourceUser, err.Error())
	}
	u.ID = newID

	if err := s.repo.Update(ctx, id, &u); err != nil {
		return domain.NewRecordError(domain.ResourceUser, conflictID(err, id, newID), err)
	}
	s.logger.Info().Int64("user_id", id).Int64("new_id", newID).Msg("user updated")
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.NewRecordError(domain.ResourceUser, id, err)
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
