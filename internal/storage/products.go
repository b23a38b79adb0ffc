package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

const productColumns = `id, name, price, billing_period, category, logo,
			      active, details_template, created_at`

// ListActiveProducts возвращает все активные товары каталога.
func (s *Storage) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	const op = "storage.ListActiveProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE active`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Price, &p.BillingPeriod, &p.Category,
			&p.Logo, &p.Active, &p.DetailsTemplate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListFeaturedProducts возвращает не более limit активных товаров для витрины.
func (s *Storage) ListFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	const op = "storage.ListFeaturedProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE active
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Price, &p.BillingPeriod, &p.Category,
			&p.Logo, &p.Active, &p.DetailsTemplate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
