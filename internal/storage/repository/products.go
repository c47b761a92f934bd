package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
)

// CreateProduct сохраняет новый товар поставщика и возвращает его uid.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO products (name, price, description, image_path, vendor_uid)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Price, product.Description, product.ImagePath,
		product.VendorUID).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetProduct возвращает товар по его uid.
func (s *Storage) GetProduct(ctx context.Context, productUID string) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, price, description, image_path, vendor_uid, created_at
			  FROM products
			  WHERE uid = $1`
	p := &models.Product{}
	row := s.DB.QueryRowContext(ctx, query, productUID)
	if err := row.Scan(&p.UID, &p.Name, &p.Price, &p.Description, &p.ImagePath,
		&p.VendorUID, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProductNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ListProducts возвращает страницу товаров всех поставщиков.
func (s *Storage) ListProducts(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, price, description, image_path, vendor_uid, created_at
			  FROM products
			  ORDER BY created_at, uid
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.UID, &p.Name, &p.Price, &p.Description, &p.ImagePath,
			&p.VendorUID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
