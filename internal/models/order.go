package models

import "time"

// Статусы заказа. Заказ создается при покупке и переводится
// в другие статусы вручную при выдаче учетных данных.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// Order представляет покупку: связывает пользователя с товаром.
// Credentials и даты подписки заполняются при ручной выдаче,
// до этого остаются nil.
type Order struct {
	ID          int64      // Уникальный идентификатор заказа
	UserID      int64      // Покупатель
	ProductID   int64      // Купленный товар
	Price       int64      // Зафиксированная цена в минимальных единицах валюты
	Status      string     // Текущий статус заказа
	Credentials *string    // Выданные учетные данные, nil до выдачи
	StartDate   *time.Time // Начало подписки
	EndDate     *time.Time // Окончание подписки
	CreatedAt   time.Time  // Дата покупки
}

// OrderSummary строка истории заказов в профиле:
// заказ вместе с названием купленного товара.
type OrderSummary struct {
	ID          int64
	ProductName string
	Price       int64
	Status      string
	Credentials *string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
}
