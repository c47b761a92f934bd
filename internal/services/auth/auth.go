// Package services содержит логику бизнес-уровня для регистрации и входа поставщиков.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vendor-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/password"
	"github.com/magabrotheeeer/vendor-registry/internal/models"
	"github.com/magabrotheeeer/vendor-registry/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при любой ошибке входа:
// неизвестный email и неверный пароль не различаются.
var ErrInvalidCredentials = errors.New("invalid credentials")

// VendorRepository описывает контракт для работы с поставщиками в базе данных.
type VendorRepository interface {
	// RegisterVendor сохраняет нового поставщика и возвращает его uid.
	RegisterVendor(ctx context.Context, vendor models.Vendor) (string, error)

	// GetVendorByEmail возвращает поставщика по email или ошибку, если не найден.
	GetVendorByEmail(ctx context.Context, email string) (*models.Vendor, error)
}

// AuthService отвечает за регистрацию и вход поставщиков с выдачей JWT.
type AuthService struct {
	vendors  VendorRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(vendors VendorRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		vendors:  vendors,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового поставщика с хэшированием пароля.
// Дубликат email пробрасывается как repository.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	vendor := models.Vendor{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	return s.vendors.RegisterVendor(ctx, vendor)
}

// Login проверяет пароль поставщика и генерирует JWT.
// Возвращает токен и username поставщика.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, username string, err error) {
	vendor, err := s.vendors.GetVendorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(vendor.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(vendor.Username, vendor.UID)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}
	return token, vendor.Username, nil
}
