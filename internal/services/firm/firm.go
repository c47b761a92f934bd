// Package services содержит бизнес-логику работы с фирмами.
// Запись фирмы всегда привязывается к поставщику, создавшему её;
// кеш одиночных чтений поставщика при этом инвалидируется.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
	vendorservice "github.com/magabrotheeeer/vendor-registry/internal/services/vendor"
)

// FirmRepository определяет методы для работы с фирмами в хранилище.
type FirmRepository interface {
	// CreateFirm создаёт фирму, связывая её с поставщиком, и возвращает uid.
	CreateFirm(ctx context.Context, vendorUID, name string) (string, error)
	// GetFirm возвращает фирму по uid.
	GetFirm(ctx context.Context, firmUID string) (*models.Firm, error)
	// ListFirms возвращает страницу фирм.
	ListFirms(ctx context.Context, limit, offset int) ([]*models.Firm, error)
	// UpdateFirm обновляет название фирмы по uid.
	UpdateFirm(ctx context.Context, firmUID, name string) error
	// ListFirmVendors возвращает uid поставщиков, связанных с фирмой.
	ListFirmVendors(ctx context.Context, firmUID string) ([]string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// FirmService реализует бизнес-логику работы с фирмами.
type FirmService struct {
	repo  FirmRepository
	cache Cache
	log   *slog.Logger
}

// NewFirmService создает новый экземпляр FirmService.
func NewFirmService(repo FirmRepository, cache Cache, log *slog.Logger) *FirmService {
	return &FirmService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создаёт фирму для поставщика и инвалидирует его кеш,
// чтобы следующее чтение увидело новую связь.
func (s *FirmService) Create(ctx context.Context, vendorUID, name string) (string, error) {
	firmUID, err := s.repo.CreateFirm(ctx, vendorUID, name)
	if err != nil {
		return "", err
	}
	s.log.Info("created new firm", slog.String("firm_uid", firmUID))

	cacheKey := vendorservice.CacheKey(vendorUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate vendor cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return firmUID, nil
}

// Read возвращает фирму по uid.
func (s *FirmService) Read(ctx context.Context, firmUID string) (*models.Firm, error) {
	return s.repo.GetFirm(ctx, firmUID)
}

// List возвращает страницу фирм.
func (s *FirmService) List(ctx context.Context, limit, offset int) ([]*models.Firm, error) {
	return s.repo.ListFirms(ctx, limit, offset)
}

// Update обновляет название фирмы и инвалидирует кеш всех связанных
// поставщиков: закешированные документы поставщиков содержат фирмы
// целиком, включая название.
func (s *FirmService) Update(ctx context.Context, firmUID, name string) error {
	if err := s.repo.UpdateFirm(ctx, firmUID, name); err != nil {
		return err
	}

	vendorUIDs, err := s.repo.ListFirmVendors(ctx, firmUID)
	if err != nil {
		s.log.Warn("failed to list firm vendors for cache invalidation",
			slog.String("firm_uid", firmUID), slog.Any("err", err))
		return nil
	}
	for _, vendorUID := range vendorUIDs {
		cacheKey := vendorservice.CacheKey(vendorUID)
		if err := s.cache.Invalidate(cacheKey); err != nil {
			s.log.Warn("failed to invalidate vendor cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return nil
}
