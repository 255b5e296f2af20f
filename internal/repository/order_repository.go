package repository

import (
	"bakery_shop/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByPhone(phone string) ([]models.Order, error)
	GetByEmail(email string) ([]models.Order, error)
	GetByStatus(status models.OrderStatus) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByPhone(phone string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
