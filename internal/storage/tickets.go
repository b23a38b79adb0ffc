package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// CreateTicket сохраняет обращение в поддержку и возвращает его ID.
func (s *Storage) CreateTicket(ctx context.Context, ticket models.SupportTicket) (int64, error) {
	const op = "storage.CreateTicket"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO support_tickets (user_id, subject, message, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		ticket.UserID, ticket.Subject, ticket.Message, ticket.Status).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
