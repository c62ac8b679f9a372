package ticket

import (
	"time"

	vo "reinkjet/internal/domain/ticket/value_objects"
)

// HistoryEntry is an immutable audit record of a ticket event. ActorID is
// nil for entries written by unauthenticated flows.
type HistoryEntry struct {
	id          uint
	ticketID    uint
	action      vo.HistoryAction
	description string
	actorID     *uint
	createdAt   time.Time
}

func NewHistoryEntry(ticketID uint, action vo.HistoryAction, description string, actorID *uint) *HistoryEntry {
	return &HistoryEntry{
		ticketID:    ticketID,
		action:      action,
		description: description,
		actorID:     actorID,
		createdAt:   time.Now().UTC(),
	}
}

func ReconstructHistoryEntry(
	id uint,
	ticketID uint,
	action vo.HistoryAction,
	description string,
	actorID *uint,
	createdAt time.Time,
) *HistoryEntry {
	return &HistoryEntry{
		id:          id,
		ticketID:    ticketID,
		action:      action,
		description: description,
		actorID:     actorID,
		createdAt:   createdAt,
	}
}

func (h *HistoryEntry) ID() uint { return h.id }
func (h *HistoryEntry) TicketID() uint { return h.ticketID }
func (h *HistoryEntry) Action() vo.HistoryAction { return h.action }
func (h *HistoryEntry) Description() string { return h.description }
func (h *HistoryEntry) ActorID() *uint { return h.actorID }
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }

// SetTicketID binds a pending entry to its ticket once the ticket row has
// an ID. Only valid while the entry is unbound.
func (h *HistoryEntry) SetTicketID(ticketID uint) {
	if h.ticketID == 0 {
		h.ticketID = ticketID
	}
}

// SetID records the persisted row ID. Only valid while the entry is unsaved.
func (h *HistoryEntry) SetID(id uint) {
	if h.id == 0 {
		h.id = id
	}
}
