package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
)

// CreateFirm создаёт фирму и связывает её с поставщиком в одной транзакции.
// Возвращает uid созданной фирмы.
func (s *Storage) CreateFirm(ctx context.Context, vendorUID, name string) (string, error) {
	const op = "storage.CreateFirm"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var firmUID string
	query := `INSERT INTO firms (name)
			  VALUES ($1)
			  RETURNING uid;`
	if err = tx.QueryRowContext(ctx, query, name).Scan(&firmUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query = `INSERT INTO vendor_firms (vendor_uid, firm_uid)
			 VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, query, vendorUID, firmUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return firmUID, nil
}

// GetFirm возвращает фирму по её uid.
func (s *Storage) GetFirm(ctx context.Context, firmUID string) (*models.Firm, error) {
	const op = "storage.GetFirm"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, created_at
			  FROM firms
			  WHERE uid = $1`
	f := &models.Firm{}
	row := s.DB.QueryRowContext(ctx, query, firmUID)
	if err := row.Scan(&f.UID, &f.Name, &f.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrFirmNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

// ListFirms возвращает страницу фирм.
func (s *Storage) ListFirms(ctx context.Context, limit, offset int) ([]*models.Firm, error) {
	const op = "storage.ListFirms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, created_at
			  FROM firms
			  ORDER BY created_at, uid
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Firm
	for rows.Next() {
		var f models.Firm
		if err = rows.Scan(&f.UID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListFirmVendors возвращает uid всех поставщиков, связанных с фирмой.
// Используется для инвалидации кеша поставщиков при изменении фирмы.
func (s *Storage) ListFirmVendors(ctx context.Context, firmUID string) ([]string, error) {
	const op = "storage.ListFirmVendors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT vendor_uid
			  FROM vendor_firms
			  WHERE firm_uid = $1`
	rows, err := s.DB.QueryContext(ctx, query, firmUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []string
	for rows.Next() {
		var vendorUID string
		if err = rows.Scan(&vendorUID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, vendorUID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateFirm обновляет название фирмы. Возвращает ErrFirmNotFound,
// если фирма с таким uid отсутствует.
func (s *Storage) UpdateFirm(ctx context.Context, firmUID, name string) error {
	const op = "storage.UpdateFirm"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE firms
			  SET name = $1
			  WHERE uid = $2`
	res, err := s.DB.ExecContext(ctx, query, name, firmUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrFirmNotFound)
	}
	return nil
}
