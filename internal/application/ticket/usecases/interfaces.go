package usecases

import (
	"context"
	"io"

	"reinkjet/internal/application/ticket/dto"
)

// Notifier dispatches a notification email. Implementations never return
// an error; failures are logged and reported as false.
type Notifier interface {
	Notify(templateKey string, fields map[string]string) bool
}

// FileStorage persists uploaded attachment content.
type FileStorage interface {
	// Save writes the content under a collision-resistant name derived
	// from originalName and returns the stored name, full path and size.
	Save(content io.Reader, originalName string) (storedName string, path string, size int64, err error)
	Remove(storedName string) error
}

// TransactionRunner runs a function inside a database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error)
}

type RateTicketExecutor interface {
	Execute(ctx context.Context, cmd RateTicketCommand) (*dto.TicketDTO, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error)
}
