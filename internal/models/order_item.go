package models

import (
	"time"
)

// OrderItem is a frozen line of an order: product name and price are copied
// at checkout so later catalog edits never change a submitted order.
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"not null;index"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name" gorm:"not null"`
	ProductPrice int       `json:"product_price" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	Subtotal     int       `json:"subtotal" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
