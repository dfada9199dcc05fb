package repo

import (
	"context"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
)

type UserRepo struct {
	Client *db.Client
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	return r.Client.Service().WithContext(ctx).Create(u).Error
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.Client.Service().WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.Client.Service().WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id uint, role string) error {
	return r.Client.Service().WithContext(ctx).
		Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}
