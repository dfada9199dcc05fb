package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/transport"
)

type WishlistService struct {
	Repo     *repo.WishlistRepo
	Products *repo.CatalogRepo
}

func (s *WishlistService) Get(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	return s.Repo.List(ctx, userID)
}

// AddItem is idempotent: re-adding a wished product returns the
// existing row.
func (s *WishlistService) AddItem(ctx context.Context, userID uint, req transport.AddWishlistItemRequest) (*models.WishlistItem, error) {
	if _, err := s.Products.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrValidation)
		}
		return nil, err
	}

	item, err := s.Repo.Find(ctx, userID, req.ProductID)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = &models.WishlistItem{UserID: userID, ProductID: req.ProductID}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) RemoveItem(ctx context.Context, userID, productID uint) error {
	n, err := s.Repo.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *WishlistService) Clear(ctx context.Context, userID uint) error {
	return s.Repo.Clear(ctx, userID)
}
