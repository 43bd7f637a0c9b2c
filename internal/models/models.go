package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is seeded once at startup and read-only afterwards. Price is a
// decimal string so currency amounts never pass through a binary float.
type Product struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name            string    `gorm:"not null"              json:"name"`
	Description     string    `gorm:"not null"              json:"description"`
	Price           string    `gorm:"not null"              json:"price"`
	Unit            string    `gorm:"not null"              json:"unit"`
	Image           string    `gorm:"not null"              json:"image"`
	NutritionalInfo string    `json:"nutritionalInfo"`
	PreparationTips string    `json:"preparationTips"`
	InStock         int       `gorm:"default:1"             json:"inStock"`
	CreatedAt       time.Time `gorm:"autoCreateTime"        json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// CartItem holds one cart line. At most one line exists per ProductID.
// CreatedAt keeps listings in insertion order in the gorm store and is
// not part of the wire format.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"            json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"  json:"productId"`
	Quantity  int       `gorm:"default:1;check:quantity>0"      json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime"                  json:"-"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartItemWithProduct is the join view of a cart line with its product.
// Computed on read, never persisted.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Name    string    `gorm:"not null"              json:"name"`
	Email   string    `gorm:"not null"              json:"email"`
	Phone   string    `json:"phone,omitempty"`
	Message string    `gorm:"not null"              json:"message"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
