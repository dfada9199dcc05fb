package repo

import (
	"context"
	"time"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
)

type TokenRepo struct {
	Client *db.Client
}

func (r *TokenRepo) Save(ctx context.Context, token string, userID uint, expiresAt time.Time) error {
	row := models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.Unix(),
	}
	return r.Client.Service().WithContext(ctx).Create(&row).Error
}

func (r *TokenRepo) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	if err := r.Client.Service().WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *TokenRepo) Revoke(ctx context.Context, token string) error {
	return r.Client.Service().WithContext(ctx).
		Model(&models.RefreshToken{}).Where("token = ?", token).Update("revoked", true).Error
}
