package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// CreateOrder вставляет новый заказ и возвращает его ID.
// HTTP-маршрута покупки нет: заказы создаются инструментами
// ручного оформления и тестами.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (int64, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO orders (user_id, product_id, price, status, credentials,
			      start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		order.UserID, order.ProductID, order.Price, order.Status, order.Credentials,
		order.StartDate, order.EndDate).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListOrderSummariesByUser возвращает историю заказов пользователя вместе
// с названиями товаров. Сортировка по дате окончания подписки по убыванию;
// для заказов без даты окончания вместо нее берется дата создания.
func (s *Storage) ListOrderSummariesByUser(ctx context.Context, userID int64) ([]models.OrderSummary, error) {
	const op = "storage.ListOrderSummariesByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT o.id, p.name, o.price, o.status, o.credentials,
			      o.start_date, o.end_date, o.created_at
			  FROM orders o
			  JOIN products p ON p.id = o.product_id
			  WHERE o.user_id = $1
			  ORDER BY COALESCE(o.end_date, o.created_at) DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.OrderSummary
	for rows.Next() {
		var o models.OrderSummary
		var credentials sql.NullString
		var startDate, endDate sql.NullTime
		if err = rows.Scan(&o.ID, &o.ProductName, &o.Price, &o.Status, &credentials,
			&startDate, &endDate, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if credentials.Valid {
			o.Credentials = &credentials.String
		}
		if startDate.Valid {
			o.StartDate = &startDate.Time
		}
		if endDate.Valid {
			o.EndDate = &endDate.Time
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountOrders возвращает общее количество заказов.
func (s *Storage) CountOrders(ctx context.Context) (int, error) {
	const op = "storage.CountOrders"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// TotalRevenue возвращает суммарную выручку по всем заказам
// в минимальных единицах валюты.
func (s *Storage) TotalRevenue(ctx context.Context) (int64, error) {
	const op = "storage.TotalRevenue"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int64
	query := `SELECT COALESCE(SUM(price), 0) FROM orders`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
