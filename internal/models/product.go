package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       int            `json:"price" gorm:"not null"` // whole roubles
	CategoryID  uint           `json:"category_id"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ImageURL    string         `json:"image_url"`
	IsAvailable bool           `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// CategorySlug returns the slug of the product's category, or an empty
// string when the category association is not loaded.
func (p *Product) CategorySlug() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Slug
}
