// Package models содержит доменную модель товара поставщика,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Product представляет товар, принадлежащий поставщику.
type Product struct {
	UID         string    `json:"uid"`         // Уникальный идентификатор товара
	Name        string    `json:"name"`        // Название товара
	Price       int       `json:"price"`       // Цена в минимальных единицах валюты
	Description string    `json:"description"` // Описание товара
	ImagePath   string    `json:"image_path"`  // Путь к загруженному изображению
	VendorUID   string    `json:"vendor_uid"`  // Идентификатор поставщика-владельца
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
}

// DummyProduct используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Product.
type DummyProduct struct {
	Name        string `json:"name" validate:"required,min=2,max=100"` // Название товара
	Price       int    `json:"price" validate:"required,gt=0"`         // Цена (>0)
	Description string `json:"description" validate:"max=1000"`        // Описание (опционально)
	ImagePath   string `json:"image_path"`                             // Путь из /upload (опционально)
}
