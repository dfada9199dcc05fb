package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/storeflow/storefront/internal/events"
	"github.com/storeflow/storefront/internal/logging"
	"github.com/storeflow/storefront/internal/models"
	"github.com/storeflow/storefront/internal/transport"
)

// OrderStore is the slice of the orders repository the service needs;
// tests substitute a stub since perform_order only exists server-side.
type OrderStore interface {
	PlaceOrder(ctx context.Context, userID uint, items []transport.OrderItemInput) (uint, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type OrderService struct {
	Store  OrderStore
	Events events.Publisher
}

// Create forwards the item list to the perform_order stored procedure.
// The only client-side rule is the non-empty check; stock, pricing and
// atomicity are the procedure's business.
func (s *OrderService) Create(ctx context.Context, userID uint, req transport.CreateOrderRequest) (uint, error) {
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: No items", ErrValidation)
	}

	orderID, err := s.Store.PlaceOrder(ctx, userID, req.Items)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, userID, map[string]any{
		"type":     "order_created",
		"user_id":  userID,
		"order_id": orderID,
	})
	return orderID, nil
}

// List degrades to an empty slice on any query error instead of
// propagating it. Every other read path in the system surfaces its
// errors; this asymmetry is deliberate and covered by a regression
// test.
func (s *OrderService) List(ctx context.Context, userID uint) []models.Order {
	orders, err := s.Store.ListByUser(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Warn("order list query failed, returning empty list", "user_id", userID, "error", err)
		return []models.Order{}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders
}

func (s *OrderService) publish(ctx context.Context, userID uint, event map[string]any) {
	if s.Events == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Events.PublishEvent(pctx, events.TopicOrderEvents, strconv.FormatUint(uint64(userID), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "topic", events.TopicOrderEvents, "error", err)
	}
}
