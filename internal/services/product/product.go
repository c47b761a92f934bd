// Package services содержит бизнес-логику работы с товарами поставщиков.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
)

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	// CreateProduct сохраняет новый товар и возвращает его uid.
	CreateProduct(ctx context.Context, product models.Product) (string, error)
	// GetProduct возвращает товар по uid.
	GetProduct(ctx context.Context, productUID string) (*models.Product, error)
	// ListProducts возвращает страницу товаров.
	ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error)
}

// ProductService реализует бизнес-логику работы с товарами.
type ProductService struct {
	repo ProductRepository
	log  *slog.Logger
}

// NewProductService создает новый экземпляр ProductService.
func NewProductService(repo ProductRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
	}
}

// Create создаёт товар для поставщика и возвращает его uid.
func (s *ProductService) Create(ctx context.Context, vendorUID string, req models.DummyProduct) (string, error) {
	product := models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImagePath:   req.ImagePath,
		VendorUID:   vendorUID,
	}
	uid, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return "", err
	}
	s.log.Info("created new product", slog.String("product_uid", uid))
	return uid, nil
}

// Read возвращает товар по uid.
func (s *ProductService) Read(ctx context.Context, productUID string) (*models.Product, error) {
	return s.repo.GetProduct(ctx, productUID)
}

// List возвращает страницу товаров.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx, limit, offset)
}
