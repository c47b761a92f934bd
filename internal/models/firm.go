// Package models содержит доменную модель фирмы,
// на которую ссылаются записи поставщиков.
package models

import "time"

// Firm представляет фирму, связанную с одним или несколькими поставщиками.
type Firm struct {
	UID       string    `json:"uid"`        // Уникальный идентификатор фирмы
	Name      string    `json:"name"`       // Название фирмы
	CreatedAt time.Time `json:"created_at"` // Дата создания
}
