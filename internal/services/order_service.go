package services

import (
	"errors"
	"fmt"

	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrTerminalStatus = errors.New("order status is terminal")
)

// CheckoutItem is one cart row as submitted by the storefront. Field names
// follow the persisted cart slot format.
type CheckoutItem struct {
	ProductID uint   `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerEmail   string         `json:"customer_email"`
	DeliveryMethod  string         `json:"delivery_method"`
	DeliveryAddress string         `json:"delivery_address"`
	Comments        string         `json:"comments"`
	Items           []CheckoutItem `json:"items"`
}

type OrderService interface {
	CreateOrder(req *CheckoutRequest) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrdersByPhone(phone string) ([]models.Order, error)
	GetOrdersByEmail(email string) ([]models.Order, error)
	GetOrders(statusFilter string) ([]models.Order, error)
	UpdateOrderStatus(orderID uint, status string) error
}

type OrderOption func(*orderService)

// WithStrictTransitions makes delivered and cancelled hard-terminal: further
// status updates are rejected. Off by default, matching the storefront's
// free-form admin workflow.
func WithStrictTransitions() OrderOption {
	return func(s *orderService) { s.strict = true }
}

type orderService struct {
	orderRepo repository.OrderRepository
	notifier  NotificationService
	strict    bool
}

func NewOrderService(orderRepo repository.OrderRepository, notifier NotificationService, opts ...OrderOption) OrderService {
	s := &orderService{orderRepo: orderRepo, notifier: notifier}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder validates the checkout request, freezes the cart snapshot into
// order lines and stores the order with status "new". The caller's cart is
// never touched: on failure nothing is created, on success clearing the cart
// stays an explicit customer action.
func (s *orderService) CreateOrder(req *CheckoutRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: customer name, phone and items are required", ErrValidation)
	}

	deliveryMethod := req.DeliveryMethod
	if deliveryMethod == "" {
		deliveryMethod = "pickup"
	}

	subtotal := 0
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.Name,
			ProductPrice: item.Price,
			Quantity:     quantity,
			Subtotal:     item.Price * quantity,
		})
		subtotal += item.Price * quantity
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryMethod:  deliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
		Comments:        req.Comments,
		TotalAmount:     OrderTotal(subtotal),
		Status:          models.OrderNew,
		Items:           items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(order)
	}

	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrdersByPhone(phone string) ([]models.Order, error) {
	return s.orderRepo.GetByPhone(phone)
}

func (s *orderService) GetOrdersByEmail(email string) ([]models.Order, error) {
	return s.orderRepo.GetByEmail(email)
}

func (s *orderService) GetOrders(statusFilter string) ([]models.Order, error) {
	if statusFilter == "" {
		return s.orderRepo.GetAll()
	}
	return s.orderRepo.GetByStatus(models.OrderStatus(statusFilter))
}

// UpdateOrderStatus moves an order to a new workflow state. The value must
// be one of the six known statuses; beyond that any transition is allowed
// unless strict mode is on. The change counts only once the repository write
// succeeds, so a failed update leaves the stored status as it was.
func (s *orderService) UpdateOrderStatus(orderID uint, status string) error {
	newStatus := models.OrderStatus(status)
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if s.strict {
		order, err := s.orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order.Status.Terminal() {
			return fmt.Errorf("%w: order %d is %s", ErrTerminalStatus, orderID, order.Status)
		}
	}

	return s.orderRepo.UpdateStatus(orderID, newStatus)
}
