// Package catalog содержит бизнес-логику каталога товаров.
package catalog

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// FeaturedLimit сколько логотипов товаров показывается на главной странице.
const FeaturedLimit = 12

// ProductRepository определяет методы для чтения товаров из хранилища.
type ProductRepository interface {
	// ListActiveProducts возвращает все активные товары.
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	// ListFeaturedProducts возвращает не более limit активных товаров.
	ListFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
}

// Service реализует чтение каталога.
type Service struct {
	repo ProductRepository
}

// New создает новый экземпляр Service.
func New(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

// ListActive возвращает все активные товары без пагинации,
// в естественном порядке хранилища.
func (s *Service) ListActive(ctx context.Context) ([]models.Product, error) {
	const op = "services.catalog.ListActive"

	products, err := s.repo.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// Featured возвращает товары для витрины главной страницы.
func (s *Service) Featured(ctx context.Context) ([]models.Product, error) {
	const op = "services.catalog.Featured"

	products, err := s.repo.ListFeaturedProducts(ctx, FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}
