// Package account содержит бизнес-логику личного кабинета клиента.
package account

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// OrderRepository определяет методы для чтения истории заказов.
type OrderRepository interface {
	// ListOrderSummariesByUser возвращает заказы пользователя с названиями
	// товаров, отсортированные по дате окончания подписки по убыванию.
	ListOrderSummariesByUser(ctx context.Context, userID int64) ([]models.OrderSummary, error)
}

// Service реализует чтение профиля.
type Service struct {
	orders OrderRepository
}

// New создает новый экземпляр Service.
func New(orders OrderRepository) *Service {
	return &Service{orders: orders}
}

// Orders возвращает историю заказов клиента.
func (s *Service) Orders(ctx context.Context, userID int64) ([]models.OrderSummary, error) {
	const op = "services.account.Orders"

	orders, err := s.orders.ListOrderSummariesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}
