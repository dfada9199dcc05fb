package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/repo"
	"github.com/storeflow/storefront/internal/transport"
)

type CartService struct {
	Repo     *repo.CartRepo
	Products *repo.CatalogRepo
	Events   events.Publisher
}

func (s *CartService) Get(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.List(ctx, userID)
}

// AddItem upserts: adding a product already in the cart accumulates
// its quantity.
func (s *CartService) AddItem(ctx context.Context, userID uint, req transport.AddCartItemRequest) (*models.CartItem, error) {
	if _, err := s.Products.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrValidation)
		}
		return nil, err
	}

	item, err := s.Repo.Find(ctx, userID, req.ProductID, req.Variant)
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		if err := s.Repo.Save(ctx, item); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Variant:   req.Variant,
			Quantity:  req.Quantity,
		}
		if err := s.Repo.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.publish(ctx, userID, map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   item.Quantity,
	})
	return item, nil
}

// UpdateItem sets the quantity outright; zero removes the row.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uint, req transport.UpdateCartItemRequest) (*models.CartItem, error) {
	if req.Quantity == 0 {
		if err := s.RemoveItem(ctx, userID, productID, req.Variant); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.Repo.Find(ctx, userID, productID, req.Variant)
	if err != nil {
		return nil, mapNotFound(err)
	}
	item.Quantity = req.Quantity
	if err := s.Repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, userID, map[string]any{
		"type":       "cart_item_updated",
		"user_id":    userID,
		"product_id": productID,
		"quantity":   item.Quantity,
	})
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint, variant string) error {
	n, err := s.Repo.Delete(ctx, userID, productID, variant)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.publish(ctx, userID, map[string]any{
		"type":       "cart_item_removed",
		"user_id":    userID,
		"product_id": productID,
	})
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if err := s.Repo.Clear(ctx, userID); err != nil {
		return err
	}
	s.publish(ctx, userID, map[string]any{
		"type":    "cart_cleared",
		"user_id": userID,
	})
	return nil
}

func (s *CartService) publish(ctx context.Context, userID uint, event map[string]any) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, events.TopicCartEvents, strconv.FormatUint(uint64(userID), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "topic", events.TopicCartEvents, "error", err)
	}
}
