package handlers

import (
	"net/http"
	"strconv"

	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type StorefrontHandler struct {
	productService services.ProductService
	orderService   services.OrderService
}

func NewStorefrontHandler(productService services.ProductService, orderService services.OrderService) *StorefrontHandler {
	return &StorefrontHandler{
		productService: productService,
		orderService:   orderService,
	}
}

func (h *StorefrontHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetCatalog()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *StorefrontHandler) CreateOrder(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id": order.ID,
		"order":    newOrderView(*order),
	})
}

// GetOrders is the customer lookup: exactly one of phone, email or order_id
// selects the orders to return.
func (h *StorefrontHandler) GetOrders(c *gin.Context) {
	phone := c.Query("phone")
	email := c.Query("email")
	orderID := c.Query("order_id")

	if phone == "" && email == "" && orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Specify phone, email or order id"})
		return
	}

	switch {
	case orderID != "":
		id, err := strconv.ParseUint(orderID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		order, err := h.orderService.GetOrderByID(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": []orderView{newOrderView(*order)},
			"total":  1,
		})
	case phone != "":
		orders, err := h.orderService.GetOrdersByPhone(phone)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders), "total": len(orders)})
	default:
		orders, err := h.orderService.GetOrdersByEmail(email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders), "total": len(orders)})
	}
}
