// Package models содержит доменную модель поставщика (vendor),
// включающую учётные данные, хэш пароля и связанные фирмы.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Vendor представляет зарегистрированного поставщика.
type Vendor struct {
	UID          string    `json:"uid"`        // Уникальный идентификатор поставщика
	Username     string    `json:"username"`   // Отображаемое имя
	Email        string    `json:"email"`      // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`          // Хэш пароля, наружу не отдается
	CreatedAt    time.Time `json:"created_at"` // Дата регистрации
	Firms        []*Firm   `json:"firm"`       // Связанные фирмы, подставляются при чтении
}
