package services

import (
	"fmt"

	"bakery_shop/internal/cart"
	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
)

// CartSummary is the cart as the storefront shows it: rows plus the derived
// totals, including what delivery would cost if the order were placed now.
type CartSummary struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	Subtotal    int               `json:"subtotal"`
	DeliveryFee int               `json:"delivery_fee"`
	Total       int               `json:"total"`
}

type CartService interface {
	GetCart(sessionID string) (*CartSummary, error)
	AddItem(sessionID string, productID uint) (*CartSummary, error)
	UpdateQuantity(sessionID string, productID uint, quantity int) (*CartSummary, error)
	RemoveItem(sessionID string, productID uint) (*CartSummary, error)
	ClearCart(sessionID string) (*CartSummary, error)
}

type cartService struct {
	slots       cart.Factory
	productRepo repository.ProductRepository
}

func NewCartService(slots cart.Factory, productRepo repository.ProductRepository) CartService {
	return &cartService{slots: slots, productRepo: productRepo}
}

func (s *cartService) GetCart(sessionID string) (*CartSummary, error) {
	return summarize(s.store(sessionID)), nil
}

func (s *cartService) AddItem(sessionID string, productID uint) (*CartSummary, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable {
		return nil, fmt.Errorf("%w: product %d is not available", ErrValidation, productID)
	}

	store := s.store(sessionID)
	if err := store.AddItem(*product); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return summarize(store), nil
}

func (s *cartService) UpdateQuantity(sessionID string, productID uint, quantity int) (*CartSummary, error) {
	store := s.store(sessionID)
	if err := store.UpdateQuantity(productID, quantity); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return summarize(store), nil
}

func (s *cartService) RemoveItem(sessionID string, productID uint) (*CartSummary, error) {
	store := s.store(sessionID)
	if err := store.RemoveItem(productID); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return summarize(store), nil
}

func (s *cartService) ClearCart(sessionID string) (*CartSummary, error) {
	store := s.store(sessionID)
	if err := store.Clear(); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}
	return summarize(store), nil
}

func (s *cartService) store(sessionID string) *cart.Store {
	return cart.NewStore(s.slots.ForSession(sessionID))
}

func summarize(store *cart.Store) *CartSummary {
	subtotal := store.TotalPrice()
	return &CartSummary{
		Items:       store.Items(),
		TotalItems:  store.TotalItems(),
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFeeFor(subtotal),
		Total:       OrderTotal(subtotal),
	}
}
