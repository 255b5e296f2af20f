package main

import (
	"log"

	"bakery_shop/internal/config"
	"bakery_shop/internal/database"
	"bakery_shop/internal/handlers"
	"bakery_shop/internal/migrations"
	"bakery_shop/internal/redis"
	"bakery_shop/internal/repository"
	"bakery_shop/internal/services"
	"bakery_shop/pkg/mailer"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis (durable cart slots)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize mailer when SMTP is configured
	var mailClient *mailer.Client
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		mailClient = mailer.NewClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(mailClient, cfg.BakeryEmail)
	orderService := services.NewOrderService(orderRepo, notificationService)
	productService := services.NewProductService(productRepo, categoryRepo)
	cartService := services.NewCartService(redisClient, productRepo)

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(cartService)
	storefrontHandler := handlers.NewStorefrontHandler(productService, orderService)
	adminHandler := handlers.NewAdminHandler(productService, orderService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.GET("/products", storefrontHandler.GetProducts)
		api.POST("/orders", storefrontHandler.CreateOrder)
		api.GET("/orders", storefrontHandler.GetOrders)

		cartAPI := api.Group("/cart/:session_id")
		{
			cartAPI.GET("", cartHandler.GetCart)
			cartAPI.POST("/items", cartHandler.AddItem)
			cartAPI.PATCH("/items/:product_id", cartHandler.UpdateQuantity)
			cartAPI.DELETE("/items/:product_id", cartHandler.RemoveItem)
			cartAPI.DELETE("", cartHandler.ClearCart)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.GET("/categories", adminHandler.ListCategories)
			admin.GET("/orders", adminHandler.ListOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
