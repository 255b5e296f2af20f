package services_test

import (
	"bakery_shop/internal/models"

	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders    map[uint]*models.Order
	nextID    uint
	createErr error
	updateErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order)}
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	stored := *order
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetByPhone(phone string) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.CustomerPhone == phone {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetByEmail(email string) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.CustomerEmail == email {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.Status == status {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(id uint, status models.OrderStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

type fakeProductRepo struct {
	products map[uint]*models.Product
	nextID   uint
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint]*models.Product)}
	for i := range products {
		stored := products[i]
		f.products[stored.ID] = &stored
		if stored.ID > f.nextID {
			f.nextID = stored.ID
		}
	}
	return f
}

func (f *fakeProductRepo) Create(product *models.Product) error {
	f.nextID++
	product.ID = f.nextID
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductRepo) GetAll() ([]models.Product, error) {
	var products []models.Product
	for _, product := range f.products {
		products = append(products, *product)
	}
	return products, nil
}

func (f *fakeProductRepo) GetAvailable() ([]models.Product, error) {
	var products []models.Product
	for _, product := range f.products {
		if product.IsAvailable {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) Update(product *models.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *product
	f.products[product.ID] = &stored
	return nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	delete(f.products, id)
	return nil
}
