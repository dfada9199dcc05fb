package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/storeflow/storefront/internal/db"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/transport"
)

// OrderRepo delegates order placement to the perform_order stored
// procedure. Stock checks, price snapshots and atomicity all live in
// the procedure; the client side only forwards the item list.
type OrderRepo struct {
	Client *db.Client
}

func (r *OrderRepo) PlaceOrder(ctx context.Context, userID uint, items []transport.OrderItemInput) (uint, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return 0, fmt.Errorf("encode order items: %w", err)
	}

	var orderID uint
	err = r.Client.Service().WithContext(ctx).
		Raw("SELECT perform_order(?, ?::jsonb)", userID, string(payload)).
		Scan(&orderID).Error
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.Client.Service().WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
