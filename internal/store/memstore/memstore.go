package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/store"
)

// Store is the in-memory backend for catalog, cart and contact data. Maps
// are guarded by a mutex because echo serves requests on concurrent
// goroutines; order slices keep listings in insertion order.
type Store struct {
	mu sync.RWMutex

	products     map[uuid.UUID]models.Product
	productOrder []uuid.UUID

	cartItems []models.CartItem

	contactMessages map[uuid.UUID]models.ContactMessage
}

func New() *Store {
	s := &Store{
		products:        make(map[uuid.UUID]models.Product),
		contactMessages: make(map[uuid.UUID]models.ContactMessage),
	}
	for _, p := range store.SeedProducts() {
		p.ID = uuid.New()
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}
	return s
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *Store) ListCartItems(ctx context.Context) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.cartItems))
	copy(out, s.cartItems)
	return out, nil
}

func (s *Store) ListCartItemsWithProducts(ctx context.Context) ([]models.CartItemWithProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItemWithProduct, 0, len(s.cartItems))
	for _, item := range s.cartItems {
		product, ok := s.products[item.ProductID]
		if !ok {
			// Dangling reference: dropped from the view, never an error.
			continue
		}
		out = append(out, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return out, nil
}

func (s *Store) AddCartItem(ctx context.Context, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity += quantity
			merged := s.cartItems[i]
			return &merged, nil
		}
	}

	item := models.CartItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
	}
	s.cartItems = append(s.cartItems, item)
	return &item, nil
}

func (s *Store) UpdateCartItem(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ID != id {
			continue
		}
		if quantity <= 0 {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
			return nil, true, nil
		}
		s.cartItems[i].Quantity = quantity
		updated := s.cartItems[i]
		return &updated, false, nil
	}
	return nil, false, store.ErrNotFound
}

func (s *Store) DeleteCartItem(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cartItems {
		if s.cartItems[i].ID == id {
			s.cartItems = append(s.cartItems[:i], s.cartItems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *msg
	created.ID = uuid.New()
	s.contactMessages[created.ID] = created
	return &created, nil
}
