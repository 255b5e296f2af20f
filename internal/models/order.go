package models

import (
	"time"
)

// Order is created from a cart snapshot at checkout. Everything except
// Status is immutable after creation.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerName    string      `json:"customer_name" gorm:"not null"`
	CustomerPhone   string      `json:"customer_phone" gorm:"not null"`
	CustomerEmail   string      `json:"customer_email"`
	DeliveryMethod  string      `json:"delivery_method" gorm:"default:'pickup'"` // pickup, delivery
	DeliveryAddress string      `json:"delivery_address"`
	Comments        string      `json:"comments" gorm:"type:text"`
	TotalAmount     int         `json:"total_amount" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"default:'new'"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
