package cart

import (
	"bakery_shop/internal/models"
)

// Storage is the durable slot a cart is written to. Save always receives the
// full item sequence; Load returns whatever was last saved, or nil when the
// slot is empty.
type Storage interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// Factory hands out the durable slot for one shopper session.
type Factory interface {
	ForSession(sessionID string) Storage
}

// Store holds the shopper's pending selection: one row per product id, in
// the order products were first added. Every mutation writes the full cart
// through to storage before returning.
type Store struct {
	storage Storage
	items   []models.CartItem
}

// NewStore loads the last persisted cart from storage. Unreadable or corrupt
// state falls back to an empty cart; cart contents are not worth failing a
// session over.
func NewStore(storage Storage) *Store {
	items, err := storage.Load()
	if err != nil || items == nil {
		items = []models.CartItem{}
	}
	return &Store{storage: storage, items: items}
}

// AddItem puts one unit of the product into the cart. A product already in
// the cart gets its quantity incremented instead of a duplicate row.
func (s *Store) AddItem(product models.Product) error {
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			return s.persist()
		}
	}
	s.items = append(s.items, models.NewCartItem(product, 1))
	return s.persist()
}

// RemoveItem deletes the row with the given product id. Removing an absent
// product is a no-op.
func (s *Store) RemoveItem(productID uint) error {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// UpdateQuantity sets the quantity of the row with the given product id,
// keeping its position. A quantity of zero or less removes the row; an
// absent id is a no-op.
func (s *Store) UpdateQuantity(productID uint, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.items = []models.CartItem{}
	return s.persist()
}

// TotalItems returns the sum of quantities, not the number of distinct rows.
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the cart subtotal. Delivery fees are a checkout
// concern, not a cart one.
func (s *Store) TotalPrice() int {
	total := 0
	for _, item := range s.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Items returns a snapshot copy of the cart rows.
func (s *Store) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) persist() error {
	return s.storage.Save(s.items)
}
