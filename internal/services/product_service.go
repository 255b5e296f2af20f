package services

import (
	"fmt"

	"bakery_shop/internal/models"
	"bakery_shop/internal/repository"
)

type ProductService interface {
	GetCatalog() ([]models.Product, error)
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	GetCategories() ([]models.Category, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// GetCatalog returns the storefront view: available products only.
func (s *productService) GetCatalog() ([]models.Product, error) {
	return s.productRepo.GetAvailable()
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) CreateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

func (s *productService) UpdateProduct(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

func (s *productService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}

func (s *productService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if product.Price <= 0 {
		return fmt.Errorf("%w: product price must be positive", ErrValidation)
	}
	return nil
}
