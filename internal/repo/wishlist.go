package repo

import (
	"context"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
)

type WishlistRepo struct {
	Client *db.Client
}

func (r *WishlistRepo) List(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.Client.Service().WithContext(ctx).
		Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepo) Find(ctx context.Context, userID, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.Client.Service().WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepo) Create(ctx context.Context, item *models.WishlistItem) error {
	return r.Client.Service().WithContext(ctx).Create(item).Error
}

func (r *WishlistRepo) Delete(ctx context.Context, userID, productID uint) (int64, error) {
	res := r.Client.Service().WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}

func (r *WishlistRepo) Clear(ctx context.Context, userID uint) error {
	return r.Client.Service().WithContext(ctx).
		Where("user_id = ?", userID).Delete(&models.WishlistItem{}).Error
}
