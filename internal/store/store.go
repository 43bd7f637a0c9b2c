package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kijanigreens/storefront/internal/models"
)

// ErrNotFound signals a lookup against an unknown identifier. It is an
// expected outcome, not a fault; handlers translate it to 404.
var ErrNotFound = errors.New("not found")

type CatalogStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type CartStore interface {
	ListCartItems(ctx context.Context) ([]models.CartItem, error)
	ListCartItemsWithProducts(ctx context.Context) ([]models.CartItemWithProduct, error)

	// AddCartItem merges into an existing line for the same product or
	// creates a fresh one. Returns the line as persisted.
	AddCartItem(ctx context.Context, productID uuid.UUID, quantity int) (*models.CartItem, error)

	// UpdateCartItem replaces the quantity of the line with the given id.
	// A quantity of zero or less deletes the line instead; removed reports
	// which of the two happened. Unknown id returns ErrNotFound.
	UpdateCartItem(ctx context.Context, id uuid.UUID, quantity int) (item *models.CartItem, removed bool, err error)

	// DeleteCartItem removes the line if present and reports whether
	// anything was removed. Deleting an unknown id is a no-op, not an error.
	DeleteCartItem(ctx context.Context, id uuid.UUID) (bool, error)
}

type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
}
