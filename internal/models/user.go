// Package models содержит доменную модель магазина: пользователей,
// товары-подписки, заказы и обращения в поддержку.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Role роль пользователя. Закрытое перечисление: клиент или администратор.
type Role string

const (
	// RoleClient обычный покупатель
	RoleClient Role = "client"
	// RoleAdmin единственный привилегированный оператор
	RoleAdmin Role = "admin"
)

// Valid сообщает, входит ли роль в закрытое множество.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin:
		return true
	}
	return false
}

// User представляет зарегистрированного пользователя системы.
// Баланс хранится в минимальных единицах валюты (центах), чтобы
// избежать ошибок округления с плавающей точкой.
type User struct {
	ID           int64     // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // Хэш пароля пользователя
	Role         Role      // Роль пользователя: client или admin
	FirstName    string    // Имя
	LastName     string    // Фамилия
	Country      string    // Страна
	Points       int       // Бонусные баллы
	Balance      int64     // Баланс в минимальных единицах валюты
	CreatedAt    time.Time // Дата регистрации
}
