package handlers

import (
	"errors"
	"net/http"

	"bakery_shop/internal/models"
	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// orderView is an order plus its canonical status presentation, so the admin
// panel and the customer lookup render the same label and emphasis.
type orderView struct {
	models.Order
	StatusLabel    string `json:"status_label"`
	StatusEmphasis string `json:"status_emphasis"`
}

func newOrderView(order models.Order) orderView {
	info := models.DescribeStatus(string(order.Status))
	return orderView{
		Order:          order,
		StatusLabel:    info.Label,
		StatusEmphasis: info.Emphasis,
	}
}

func newOrderViews(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	return views
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTerminalStatus):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
