package service

import (
	"context"

	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
)

type UserService struct {
	Repo *repo.UserRepo
}

func (s *UserService) Me(ctx context.Context, userID uint) (*models.User, error) {
	u, err := s.Repo.ByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

// UpdateRole is the only way a role ever changes, and only admins
// reach it. Users are never deleted.
func (s *UserService) UpdateRole(ctx context.Context, userID uint, role string) (*models.User, error) {
	if _, err := s.Repo.ByID(ctx, userID); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.Repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	u, err := s.Repo.ByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}
