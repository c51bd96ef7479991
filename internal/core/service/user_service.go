package service

import (
	"context"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// UserService serves identity lookups to administrators.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = u.Redacted()
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error) {
	if err := RequireAdmin(caller); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Redacted(), nil
}
