package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery_shop/internal/cart"
	"bakery_shop/internal/handlers"
	"bakery_shop/internal/models"
	"bakery_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubOrderService struct {
	created   *models.Order
	createErr error
	orders    []models.Order
	updateErr error
}

func (s *stubOrderService) CreateOrder(req *services.CheckoutRequest) (*models.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubOrderService) GetOrderByID(id uint) (*models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrderService) GetOrdersByPhone(phone string) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) GetOrdersByEmail(email string) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) GetOrders(statusFilter string) ([]models.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) UpdateOrderStatus(orderID uint, status string) error {
	return s.updateErr
}

type stubProductService struct {
	products []models.Product
}

func (s *stubProductService) GetCatalog() ([]models.Product, error)     { return s.products, nil }
func (s *stubProductService) GetAllProducts() ([]models.Product, error) { return s.products, nil }
func (s *stubProductService) GetProductByID(id uint) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubProductService) CreateProduct(product *models.Product) error { return nil }
func (s *stubProductService) UpdateProduct(product *models.Product) error { return nil }
func (s *stubProductService) DeleteProduct(id uint) error                 { return nil }
func (s *stubProductService) GetCategories() ([]models.Category, error)   { return nil, nil }

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) Create(product *models.Product) error { return nil }
func (s *stubProductRepo) GetByID(id uint) (*models.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubProductRepo) GetAll() ([]models.Product, error)       { return s.products, nil }
func (s *stubProductRepo) GetAvailable() ([]models.Product, error) { return s.products, nil }
func (s *stubProductRepo) Update(product *models.Product) error    { return nil }
func (s *stubProductRepo) Delete(id uint) error                    { return nil }

func storefrontRouter(orderService services.OrderService) *gin.Engine {
	handler := handlers.NewStorefrontHandler(&stubProductService{}, orderService)
	router := gin.New()
	router.POST("/api/orders", handler.CreateOrder)
	router.GET("/api/orders", handler.GetOrders)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCreateOrderResponds201WithStatusPresentation(t *testing.T) {
	svc := &stubOrderService{created: &models.Order{
		ID:            7,
		CustomerName:  "Анна",
		CustomerPhone: "+7 900 123-45-67",
		Status:        models.OrderNew,
		TotalAmount:   480,
	}}
	router := storefrontRouter(svc)

	w, body := doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{
		"customer_name":  "Анна",
		"customer_phone": "+7 900 123-45-67",
		"items":          []map[string]any{{"id": 1, "name": "Круассан классический", "price": 180, "quantity": 1}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 7, body["order_id"])

	order := body["order"].(map[string]any)
	assert.Equal(t, "new", order["status"])
	assert.Equal(t, "Новый", order["status_label"])
	assert.Equal(t, "default", order["status_emphasis"])
}

func TestCreateOrderValidationFailureResponds400(t *testing.T) {
	svc := &stubOrderService{createErr: fmt.Errorf("%w: customer name, phone and items are required", services.ErrValidation)}
	router := storefrontRouter(svc)

	w, _ := doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersRequiresLookupCriterion(t *testing.T) {
	router := storefrontRouter(&stubOrderService{})

	w, _ := doJSON(t, router, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersByPhoneRendersSharedStatusTable(t *testing.T) {
	svc := &stubOrderService{orders: []models.Order{
		{ID: 1, CustomerPhone: "+7 900 123-45-67", Status: models.OrderCancelled},
	}}
	router := storefrontRouter(svc)

	w, body := doJSON(t, router, http.MethodGet, "/api/orders?phone=%2B79001234567", nil)
	require.Equal(t, http.StatusOK, w.Code)

	orders := body["orders"].([]any)
	require.Len(t, orders, 1)
	order := orders[0].(map[string]any)
	assert.Equal(t, "Отменён", order["status_label"])
	assert.Equal(t, "destructive", order["status_emphasis"])
	assert.EqualValues(t, 1, body["total"])
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	svc := &stubOrderService{updateErr: fmt.Errorf("%w: %q", services.ErrInvalidStatus, "bogus")}
	handler := handlers.NewAdminHandler(&stubProductService{}, svc)
	router := gin.New()
	router.PATCH("/api/admin/orders/:id/status", handler.UpdateOrderStatus)

	w, _ := doJSON(t, router, http.MethodPatch, "/api/admin/orders/1/status", map[string]any{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusSuccess(t *testing.T) {
	handler := handlers.NewAdminHandler(&stubProductService{}, &stubOrderService{})
	router := gin.New()
	router.PATCH("/api/admin/orders/:id/status", handler.UpdateOrderStatus)

	w, body := doJSON(t, router, http.MethodPatch, "/api/admin/orders/1/status", map[string]any{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "preparing", body["status"])
	assert.Equal(t, "Готовится", body["status_label"])
	assert.Equal(t, "outline", body["status_emphasis"])
}

func TestCartEndpointsFlow(t *testing.T) {
	repo := &stubProductRepo{products: []models.Product{
		{ID: 1, Name: "Круассан классический", Price: 180, IsAvailable: true},
	}}
	cartService := services.NewCartService(cart.NewMemoryFactory(), repo)
	handler := handlers.NewCartHandler(cartService)

	router := gin.New()
	group := router.Group("/api/cart/:session_id")
	group.GET("", handler.GetCart)
	group.POST("/items", handler.AddItem)
	group.PATCH("/items/:product_id", handler.UpdateQuantity)
	group.DELETE("/items/:product_id", handler.RemoveItem)
	group.DELETE("", handler.ClearCart)

	w, body := doJSON(t, router, http.MethodPost, "/api/cart/s1/items", map[string]any{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total_items"])
	assert.EqualValues(t, 180, body["subtotal"])
	assert.EqualValues(t, 300, body["delivery_fee"])
	assert.EqualValues(t, 480, body["total"])

	w, body = doJSON(t, router, http.MethodPatch, "/api/cart/s1/items/1", map[string]any{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total_items"])

	w, body = doJSON(t, router, http.MethodGet, "/api/cart/s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total_items"])

	w, body = doJSON(t, router, http.MethodDelete, "/api/cart/s1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["total_items"])

	w, _ = doJSON(t, router, http.MethodPost, "/api/cart/s1/items", map[string]any{"product_id": 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
