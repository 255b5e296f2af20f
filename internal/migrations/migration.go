package migrations

import (
	"log"

	"bakery_shop/internal/models"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the starter catalog.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedDefaultData inserts the categories and the starter catalog on a fresh
// database. A database that already has categories is left alone.
func seedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default catalog...")

	categories := []models.Category{
		{Name: "Круассаны", Slug: "croissants"},
		{Name: "Торты", Slug: "cakes"},
		{Name: "Пирожные", Slug: "pastries"},
		{Name: "Хлеб", Slug: "bread"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	bySlug := make(map[string]uint, len(categories))
	for _, category := range categories {
		bySlug[category.Slug] = category.ID
	}

	products := []models.Product{
		{
			Name:        "Круассан классический",
			Description: "Хрустящий французский круассан из слоёного теста",
			Price:       180,
			CategoryID:  bySlug["croissants"],
			ImageURL:    "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
		{
			Name:        "Шоколадный торт",
			Description: "Нежный бисквитный торт с бельгийским шоколадом",
			Price:       2500,
			CategoryID:  bySlug["cakes"],
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
		{
			Name:        "Эклеры ассорти",
			Description: "Французские пирожные с кремом разных вкусов",
			Price:       350,
			CategoryID:  bySlug["pastries"],
			ImageURL:    "https://images.unsplash.com/photo-1612201142855-c337de87f556?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
		{
			Name:        "Ягодный тарт",
			Description: "Песочная корзиночка со свежими ягодами и кремом",
			Price:       450,
			CategoryID:  bySlug["pastries"],
			ImageURL:    "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
		{
			Name:        "Медовик классический",
			Description: "Традиционный медовый торт с кремом",
			Price:       2200,
			CategoryID:  bySlug["cakes"],
			ImageURL:    "https://images.unsplash.com/photo-1621303837174-89787a7d4729?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
		{
			Name:        "Багет французский",
			Description: "Хрустящий багет на закваске",
			Price:       120,
			CategoryID:  bySlug["bread"],
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400&h=300&fit=crop",
			IsAvailable: true,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("Default catalog seeded successfully!")
	return nil
}
