package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/vendor-registry/internal/models"
)

// RegisterVendor сохраняет нового поставщика одной атомарной вставкой и
// возвращает его uid. Уникальность email обеспечивается индексом в базе,
// нарушение транслируется в ErrDuplicateEmail.
func (s *Storage) RegisterVendor(ctx context.Context, vendor models.Vendor) (string, error) {
	const op = "storage.RegisterVendor"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO vendors (username, email, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		vendor.Username, vendor.Email, vendor.PasswordHash).Scan(&newUID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetVendorByEmail возвращает поставщика по email без разрешения фирм.
// Используется при логине для сверки хэша пароля.
func (s *Storage) GetVendorByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	const op = "storage.GetVendorByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, email, password_hash, created_at
			  FROM vendors
			  WHERE email = $1`
	v := &models.Vendor{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&v.UID, &v.Username, &v.Email, &v.PasswordHash, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrVendorNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// GetVendor возвращает поставщика по uid, подставляя вместо ссылок на фирмы
// сами документы фирм.
func (s *Storage) GetVendor(ctx context.Context, vendorUID string) (*models.Vendor, error) {
	const op = "storage.GetVendor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT v.uid, v.username, v.email, v.password_hash, v.created_at,
			      f.uid, f.name, f.created_at
			  FROM vendors v
			  LEFT JOIN vendor_firms vf ON vf.vendor_uid = v.uid
			  LEFT JOIN firms f ON f.uid = vf.firm_uid
			  WHERE v.uid = $1
			  ORDER BY f.created_at`
	rows, err := s.DB.QueryContext(ctx, query, vendorUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	vendors, err := scanVendorsWithFirms(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(vendors) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrVendorNotFound)
	}
	return vendors[0], nil
}

// ListVendors возвращает страницу поставщиков с разрешёнными фирмами.
func (s *Storage) ListVendors(ctx context.Context, limit, offset int) ([]*models.Vendor, error) {
	const op = "storage.ListVendors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT v.uid, v.username, v.email, v.password_hash, v.created_at,
			      f.uid, f.name, f.created_at
			  FROM (SELECT * FROM vendors ORDER BY created_at, uid LIMIT $1 OFFSET $2) v
			  LEFT JOIN vendor_firms vf ON vf.vendor_uid = v.uid
			  LEFT JOIN firms f ON f.uid = vf.firm_uid
			  ORDER BY v.created_at, v.uid, f.created_at`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	vendors, err := scanVendorsWithFirms(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vendors, nil
}

// scanVendorsWithFirms группирует строки соединения vendors × firms по uid
// поставщика. Порядок строк запроса сохраняется.
func scanVendorsWithFirms(rows *sql.Rows) ([]*models.Vendor, error) {
	var result []*models.Vendor
	byUID := make(map[string]*models.Vendor)

	for rows.Next() {
		var v models.Vendor
		var firmUID, firmName sql.NullString
		var firmCreatedAt sql.NullTime
		if err := rows.Scan(&v.UID, &v.Username, &v.Email, &v.PasswordHash, &v.CreatedAt,
			&firmUID, &firmName, &firmCreatedAt); err != nil {
			return nil, err
		}

		vendor, ok := byUID[v.UID]
		if !ok {
			vendor = &v
			vendor.Firms = []*models.Firm{}
			byUID[v.UID] = vendor
			result = append(result, vendor)
		}
		if firmUID.Valid {
			vendor.Firms = append(vendor.Firms, &models.Firm{
				UID:       firmUID.String,
				Name:      firmName.String,
				CreatedAt: firmCreatedAt.Time,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
