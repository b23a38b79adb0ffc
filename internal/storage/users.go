package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его ID.
// При занятой почте возвращает models.ErrDuplicateEmail.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (email, password_hash, role, first_name, last_name,
			      country, points, balance)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, string(user.Role), user.FirstName, user.LastName,
		user.Country, user.Points, user.Balance).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapInsertError(err))
	}
	return newID, nil
}

// GetUserByEmailAndRole возвращает пользователя по почте и роли.
// Поиск по почте точный, с учетом регистра.
func (s *Storage) GetUserByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	const op = "storage.GetUserByEmailAndRole"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, role, first_name, last_name,
			      country, points, balance, created_at
			  FROM users
			  WHERE email = $1 AND role = $2`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email, string(role))

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName,
		&u.LastName, &u.Country, &u.Points, &u.Balance, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, password_hash, role, first_name, last_name,
			      country, points, balance, created_at
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userID)

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FirstName,
		&u.LastName, &u.Country, &u.Points, &u.Balance, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// CountUsersByRole возвращает количество пользователей с заданной ролью.
func (s *Storage) CountUsersByRole(ctx context.Context, role models.Role) (int, error) {
	const op = "storage.CountUsersByRole"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = $1`
	if err := s.DB.QueryRowContext(ctx, query, string(role)).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
