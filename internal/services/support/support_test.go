package support_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/services/support"
)

type fakeTicketRepo struct {
	tickets []models.SupportTicket
}

func (f *fakeTicketRepo) CreateTicket(_ context.Context, ticket models.SupportTicket) (int64, error) {
	f.tickets = append(f.tickets, ticket)
	return int64(len(f.tickets)), nil
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTicketRepo{}
	svc := support.New(repo)

	id, err := svc.Submit(ctx, 1, "No llega la cuenta", "Pague ayer y sigo esperando")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, repo.tickets, 1)
	assert.Equal(t, int64(1), repo.tickets[0].UserID)
	assert.Equal(t, models.TicketStatusOpen, repo.tickets[0].Status)
}

func TestSubmit_EmptySubjectRejected(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTicketRepo{}
	svc := support.New(repo)

	_, err := svc.Submit(ctx, 1, "", "mensaje")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.tickets, "no row may be inserted on validation failure")

	_, err = svc.Submit(ctx, 1, "tema", "")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.tickets)
}

func TestSubmit_MarkupOnlySubjectRejected(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTicketRepo{}
	svc := support.New(repo)

	// после очистки от разметки тема пуста
	_, err := svc.Submit(ctx, 1, "<script>alert(1)</script>", "mensaje")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, repo.tickets)
}

func TestSubmit_SanitizesFields(t *testing.T) {
	ctx := context.Background()
	repo := &fakeTicketRepo{}
	svc := support.New(repo)

	_, err := svc.Submit(ctx, 1, "<b>tema</b>", "<i>mensaje</i> largo")
	require.NoError(t, err)

	require.Len(t, repo.tickets, 1)
	assert.Equal(t, "tema", repo.tickets[0].Subject)
	assert.Equal(t, "mensaje largo", repo.tickets[0].Message)
}
