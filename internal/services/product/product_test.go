package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
	services "github.com/magabrotheeeer/vendor-registry/internal/services/product"
	"github.com/magabrotheeeer/vendor-registry/internal/storage/repository"
)

// Мок для ProductRepository
type ProductRepoMock struct {
	mock.Mock
}

func (m *ProductRepoMock) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *ProductRepoMock) GetProduct(ctx context.Context, productUID string) (*models.Product, error) {
	args := m.Called(ctx, productUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductRepoMock) ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProductService_Create(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := services.NewProductService(repo, newNoopLogger())

	vendorUID := "550e8400-e29b-41d4-a716-446655440000"
	req := models.DummyProduct{
		Name:        "Widget",
		Price:       999,
		Description: "A useful widget",
		ImagePath:   "/uploads/widget.png",
	}

	repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.Name == "Widget" &&
			p.Price == 999 &&
			p.VendorUID == vendorUID &&
			p.ImagePath == "/uploads/widget.png"
	})).Return("product-uid", nil).Once()

	uid, err := svc.Create(context.Background(), vendorUID, req)
	assert.NoError(t, err)
	assert.Equal(t, "product-uid", uid)

	repo.AssertExpectations(t)
}

func TestProductService_Create_RepoError(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := services.NewProductService(repo, newNoopLogger())

	repo.On("CreateProduct", mock.Anything, mock.Anything).
		Return("", errors.New("db error")).Once()

	uid, err := svc.Create(context.Background(), "vendor-uid", models.DummyProduct{Name: "Widget", Price: 1})
	assert.Error(t, err)
	assert.Empty(t, uid)
}

func TestProductService_Read(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := services.NewProductService(repo, newNoopLogger())

	product := &models.Product{UID: "product-uid", Name: "Widget", Price: 999}
	repo.On("GetProduct", mock.Anything, "product-uid").Return(product, nil).Once()

	got, err := svc.Read(context.Background(), "product-uid")
	assert.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_Read_NotFound(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := services.NewProductService(repo, newNoopLogger())

	repo.On("GetProduct", mock.Anything, "missing-uid").
		Return(nil, repository.ErrProductNotFound).Once()

	got, err := svc.Read(context.Background(), "missing-uid")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Nil(t, got)
}

func TestProductService_List(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := services.NewProductService(repo, newNoopLogger())

	products := []*models.Product{
		{UID: "uid-1", Name: "Widget"},
		{UID: "uid-2", Name: "Gadget"},
	}
	repo.On("ListProducts", mock.Anything, 10, 0).Return(products, nil).Once()

	got, err := svc.List(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
