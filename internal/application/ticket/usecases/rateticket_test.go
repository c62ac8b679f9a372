package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/ticket"
	vo "reinkjet/internal/domain/ticket/value_objects"
	"reinkjet/internal/shared/errors"
)

func newResolvedTicket(t *testing.T, accountID uint) *ticket.Ticket {
	t.Helper()
	tk := newStoredTicket(t, accountID)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved, nil))
	tk.PullPendingHistory()
	return tk
}

func TestRateTicketUseCase_Execute_Success(t *testing.T) {
	tk := newResolvedTicket(t, 1)
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}

	uc := NewRateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RateTicketCommand{AccountID: 1, TicketID: 100, Rating: 5})

	require.NoError(t, err)
	assert.Equal(t, intPtr(5), result.SatisfactionRating)
	// Rating does not move the status.
	assert.Equal(t, "resolved", result.Status)
	require.NotNil(t, updated)
}

func TestRateTicketUseCase_Execute_RatingOutOfRange(t *testing.T) {
	uc := NewRateTicketUseCase(&mockTicketRepository{}, &mockLogger{})

	for _, rating := range []int{0, -1, 6} {
		_, err := uc.Execute(context.Background(), RateTicketCommand{AccountID: 1, TicketID: 100, Rating: rating})
		assert.True(t, errors.IsValidationError(err), "rating %d should fail validation", rating)
	}
}

func TestRateTicketUseCase_Execute_NotResolved(t *testing.T) {
	tk := newStoredTicket(t, 1)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewRateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RateTicketCommand{AccountID: 1, TicketID: 100, Rating: 3})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, tk.SatisfactionRating())
}

func TestRateTicketUseCase_Execute_NotOwner(t *testing.T) {
	tk := newResolvedTicket(t, 2)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewRateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RateTicketCommand{AccountID: 1, TicketID: 100, Rating: 3})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRateTicketUseCase_Execute_RatingOverwrites(t *testing.T) {
	tk := newResolvedTicket(t, 1)
	require.NoError(t, tk.Rate(2, nil))
	tk.PullPendingHistory()
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewRateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), RateTicketCommand{AccountID: 1, TicketID: 100, Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, intPtr(4), result.SatisfactionRating)
}
