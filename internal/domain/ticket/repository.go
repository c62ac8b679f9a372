package ticket

import (
	"context"
	"time"

	vo "reinkjet/internal/domain/ticket/value_objects"
)

type TicketFilter struct {
	AccountID *uint
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	Page      int
	PageSize  int
}

// StatsResult aggregates ticket counts for one account. Recent counts
// tickets created at or after the given cutoff.
type StatsResult struct {
	Total      int64
	ByStatus   map[string]int64
	ByPriority map[string]int64
	Recent     int64
}

type TicketRepository interface {
	// Save persists a new ticket together with its pending history
	// entries in a single transaction.
	Save(ctx context.Context, ticket *Ticket) error
	// Update persists ticket mutations together with any pending
	// history entries in a single transaction.
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetStats(ctx context.Context, accountID uint, recentSince time.Time) (*StatsResult, error)
	GetHistory(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

type AttachmentRepository interface {
	// Save persists the attachment row. Callers wrap this together with
	// the ticket history update in one transaction.
	Save(ctx context.Context, attachment *Attachment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}
