// Package dashboard содержит агрегаты для панели администратора.
package dashboard

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// StatsRepository определяет методы для подсчета агрегатов.
type StatsRepository interface {
	// CountUsersByRole возвращает количество пользователей с ролью.
	CountUsersByRole(ctx context.Context, role models.Role) (int, error)
	// CountOrders возвращает общее количество заказов.
	CountOrders(ctx context.Context) (int, error)
	// TotalRevenue возвращает выручку в минимальных единицах валюты.
	TotalRevenue(ctx context.Context) (int64, error)
}

// Stats агрегаты панели администратора.
type Stats struct {
	Clients int   // количество клиентов
	Orders  int   // количество заказов
	Revenue int64 // выручка в минимальных единицах валюты
}

// Service реализует подсчет агрегатов.
type Service struct {
	repo StatsRepository
}

// New создает новый экземпляр Service.
func New(repo StatsRepository) *Service {
	return &Service{repo: repo}
}

// Collect возвращает агрегаты для панели администратора.
func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	const op = "services.dashboard.Collect"

	clients, err := s.repo.CountUsersByRole(ctx, models.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Stats{
		Clients: clients,
		Orders:  orders,
		Revenue: revenue,
	}, nil
}
