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

func TestUpdateTicketUseCase_Execute_Success(t *testing.T) {
	tk := newStoredTicket(t, 1)
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

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   100,
		ActorID:    7,
		Status:     strPtr("in_progress"),
		Priority:   strPtr("critical"),
		AssignedTo: strPtr("Carlos"),
	})

	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, "critical", result.Priority)
	assert.Equal(t, "Carlos", result.AssignedTo)
	require.NotNil(t, updated)

	history := updated.PullPendingHistory()
	// Only the status change is recorded; priority and assignment are not
	// separate history events.
	require.Len(t, history, 1)
	assert.Equal(t, vo.ActionStatusChanged, history[0].Action())
}

func TestUpdateTicketUseCase_Execute_ResolutionAndStatus(t *testing.T) {
	tk := newStoredTicket(t, 1)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   100,
		ActorID:    7,
		Status:     strPtr("resolved"),
		Resolution: strPtr("Replaced fuser unit"),
	})

	require.NoError(t, err)
	assert.Equal(t, "resolved", result.Status)
	assert.Equal(t, "Replaced fuser unit", result.Resolution)
	assert.NotNil(t, result.ResolvedAt)
}

func TestUpdateTicketUseCase_Execute_InvalidStatusValue(t *testing.T) {
	tk := newStoredTicket(t, 1)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 100, Status: strPtr("pending")})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_IllegalTransition(t *testing.T) {
	tk := newStoredTicket(t, 1)
	require.NoError(t, tk.Close(nil, nil))
	tk.PullPendingHistory()
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 100, Status: strPtr("open")})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_ClearAssignment(t *testing.T) {
	tk := newStoredTicket(t, 1)
	tk.Assign("Carlos")
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 100, AssignedTo: strPtr("")})

	require.NoError(t, err)
	assert.Empty(t, result.AssignedTo)
}

func TestUpdateTicketUseCase_Execute_MissingTicketID(t *testing.T) {
	uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicketUseCase_Execute_UpdateFails(t *testing.T) {
	tk := newStoredTicket(t, 1)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errDatabase
		},
	}

	uc := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), UpdateTicketCommand{TicketID: 100, Priority: strPtr("low")})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
