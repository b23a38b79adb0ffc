// Package support содержит бизнес-логику обращений в поддержку.
package support

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/sanitize"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
)

// TicketRepository определяет методы для сохранения обращений.
type TicketRepository interface {
	// CreateTicket сохраняет обращение и возвращает его ID.
	CreateTicket(ctx context.Context, ticket models.SupportTicket) (int64, error)
}

// Service реализует прием обращений в поддержку.
type Service struct {
	tickets TicketRepository
}

// New создает новый экземпляр Service.
func New(tickets TicketRepository) *Service {
	return &Service{tickets: tickets}
}

// Submit очищает тему и текст от разметки и сохраняет обращение
// со статусом "open". Если после очистки тема или текст пусты,
// возвращает models.ErrValidation и ничего не сохраняет.
func (s *Service) Submit(ctx context.Context, userID int64, subject, message string) (int64, error) {
	const op = "services.support.Submit"

	subject = sanitize.Clean(subject)
	message = sanitize.Clean(message)
	if subject == "" || message == "" {
		return 0, fmt.Errorf("%s: %w", op, models.ErrValidation)
	}

	id, err := s.tickets.CreateTicket(ctx, models.SupportTicket{
		UserID:  userID,
		Subject: subject,
		Message: message,
		Status:  models.TicketStatusOpen,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
