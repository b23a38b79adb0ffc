package models

import (
	"strings"
	"time"
)

// EmailPlaceholder подставляется в шаблон деталей товара вместо почты покупателя.
const EmailPlaceholder = "{{EMAIL}}"

// Product представляет продаваемую подписку на стриминговый сервис.
// Цена хранится в минимальных единицах валюты.
type Product struct {
	ID              int64     // Уникальный идентификатор товара
	Name            string    // Название сервиса
	Price           int64     // Цена в минимальных единицах валюты
	BillingPeriod   string    // Период оплаты, например "1 mes"
	Category        string    // Категория каталога
	Logo            string    // Ссылка на логотип
	Active          bool      // Доступен ли товар в каталоге
	DetailsTemplate string    // Шаблон деталей с плейсхолдером почты покупателя
	CreatedAt       time.Time // Дата добавления
}

// RenderDetails возвращает текст деталей товара с подставленной почтой покупателя.
func (p Product) RenderDetails(email string) string {
	return strings.ReplaceAll(p.DetailsTemplate, EmailPlaceholder, email)
}
