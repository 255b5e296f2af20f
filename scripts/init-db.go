package main

import (
	"fmt"
	"log"

	"bakery_shop/internal/config"
	"bakery_shop/internal/database"
	"bakery_shop/internal/migrations"
	"bakery_shop/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Category{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Database initialized successfully!")
}
