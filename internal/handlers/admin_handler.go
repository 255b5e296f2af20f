package handlers

import (
	"net/http"
	"strconv"

	"bakery_shop/internal/models"
	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	productService services.ProductService
	orderService   services.OrderService
}

func NewAdminHandler(productService services.ProductService, orderService services.OrderService) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		orderService:   orderService,
	}
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	CategoryID  uint   `json:"category_id"`
	ImageURL    string `json:"image_url"`
	IsAvailable *bool  `json:"is_available"`
}

func (r *productRequest) apply(product *models.Product) {
	product.Name = r.Name
	product.Description = r.Description
	product.Price = r.Price
	product.CategoryID = r.CategoryID
	product.ImageURL = r.ImageURL
	if r.IsAvailable != nil {
		product.IsAvailable = *r.IsAvailable
	}
}

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product := models.Product{IsAvailable: true}
	req.apply(&product)

	if err := h.productService.CreateProduct(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	req.apply(product)
	if err := h.productService.UpdateProduct(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.GetCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders)})
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateOrderStatus(uint(id), req.Status); err != nil {
		respondError(c, err)
		return
	}

	info := models.DescribeStatus(req.Status)
	c.JSON(http.StatusOK, gin.H{
		"order_id":        uint(id),
		"status":          req.Status,
		"status_label":    info.Label,
		"status_emphasis": info.Emphasis,
	})
}
