package models

// CartItem is one row of a shopper's cart: the product fields the storefront
// displays plus the aggregated quantity. The JSON form doubles as the wire
// format of the persisted cart slot.
type CartItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

func NewCartItem(product Product, quantity int) CartItem {
	return CartItem{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Category:    product.CategorySlug(),
		Description: product.Description,
		Image:       product.ImageURL,
		Quantity:    quantity,
	}
}
