package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kijanigreens/storefront/internal/events"
	"github.com/kijanigreens/storefront/internal/logging"
	"github.com/kijanigreens/storefront/internal/metrics"
	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/store"
)

type CartService struct {
	Store    store.CartStore
	Producer *events.Producer
}

func (s *CartService) ListCartItems(ctx context.Context) ([]models.CartItem, error) {
	return s.Store.ListCartItems(ctx)
}

func (s *CartService) ListCartItemsWithProducts(ctx context.Context) ([]models.CartItemWithProduct, error) {
	return s.Store.ListCartItemsWithProducts(ctx)
}

func (s *CartService) AddCartItem(ctx context.Context, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("productId must not be nil: %w", ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	item, err := s.Store.AddCartItem(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	metrics.CartItemsAdded.Inc()
	s.publish(ctx, item.ID.String(), map[string]interface{}{
		"type":      "cart_item_added",
		"id":        item.ID,
		"productId": item.ProductID,
		"quantity":  item.Quantity,
	})
	return item, nil
}

// UpdateCartItem replaces the line's quantity; zero or less removes the
// line. removed tells the two apart so callers never confuse a successful
// removal with a missing id.
func (s *CartService) UpdateCartItem(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, bool, error) {
	item, removed, err := s.Store.UpdateCartItem(ctx, id, quantity)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, fmt.Errorf("cart item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, false, err
	}

	if removed {
		metrics.CartItemsRemoved.Inc()
		s.publish(ctx, id.String(), map[string]interface{}{
			"type": "cart_item_removed",
			"id":   id,
		})
		return nil, true, nil
	}

	s.publish(ctx, id.String(), map[string]interface{}{
		"type":     "cart_item_updated",
		"id":       id,
		"quantity": item.Quantity,
	})
	return item, false, nil
}

func (s *CartService) DeleteCartItem(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := s.Store.DeleteCartItem(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.CartItemsRemoved.Inc()
		s.publish(ctx, id.String(), map[string]interface{}{
			"type": "cart_item_removed",
			"id":   id,
		})
	}
	return removed, nil
}

// CartTotal sums price*quantity over the join view with decimal
// arithmetic. Lines whose product cannot be resolved are already excluded
// by the view and contribute nothing.
func (s *CartService) CartTotal(ctx context.Context) (string, int, error) {
	items, err := s.Store.ListCartItemsWithProducts(ctx)
	if err != nil {
		return "", 0, err
	}

	total := decimal.Zero
	count := 0
	for _, it := range items {
		price, err := decimal.NewFromString(it.Product.Price)
		if err != nil {
			return "", 0, fmt.Errorf("parse price of product %s: %w", it.Product.ID, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	return total.StringFixed(2), count, nil
}

// Event delivery is best effort: the store mutation already happened, so a
// broker failure is logged and not surfaced to the caller.
func (s *CartService) publish(ctx context.Context, key string, event map[string]interface{}) {
	if err := s.Producer.PublishEvent(ctx, events.TopicCart, key, event); err != nil {
		logging.FromContext(ctx).Warn("publish_event_failed", "topic", events.TopicCart, "error", err)
	}
}
