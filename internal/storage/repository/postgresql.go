// Package repository реализует хранилище данных на основе PostgreSQL
// для управления поставщиками, фирмами и товарами. Предоставляет методы
// создания, чтения и обновления записей, а также разрешение ссылок
// поставщик → фирмы при чтении.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, по которым обработчики выбирают HTTP-статус.
var (
	// ErrDuplicateEmail возвращается при нарушении уникальности email поставщика.
	ErrDuplicateEmail = errors.New("email already taken")
	// ErrVendorNotFound возвращается, если поставщик не найден.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrFirmNotFound возвращается, если фирма не найдена.
	ErrFirmNotFound = errors.New("firm not found")
	// ErrProductNotFound возвращается, если товар не найден.
	ErrProductNotFound = errors.New("product not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с поставщиками, фирмами и товарами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'vendors'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table vendors missing or query error: %w", err)
	}
	return nil
}
