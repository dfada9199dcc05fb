package repo

import (
	"context"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
)

// CartRepo scopes every query to one user. The user id comes from
// verified token claims, never from the request body.
type CartRepo struct {
	Client *db.Client
}

func (r *CartRepo) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.Client.Service().WithContext(ctx).
		Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Find(ctx context.Context, userID, productID uint, variant string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.Client.Service().WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND variant = ?", userID, productID, variant).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) Create(ctx context.Context, item *models.CartItem) error {
	return r.Client.Service().WithContext(ctx).Create(item).Error
}

func (r *CartRepo) Save(ctx context.Context, item *models.CartItem) error {
	return r.Client.Service().WithContext(ctx).Save(item).Error
}

func (r *CartRepo) Delete(ctx context.Context, userID, productID uint, variant string) (int64, error) {
	res := r.Client.Service().WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND variant = ?", userID, productID, variant).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepo) Clear(ctx context.Context, userID uint) error {
	return r.Client.Service().WithContext(ctx).
		Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
