package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "reinkjet/internal/domain/ticket/value_objects"
)

// Ticket is the aggregate root for a support ticket. Equipment details
// (serial, model, location) are snapshotted at creation time and never
// re-joined against the equipment registry.
type Ticket struct {
	id                 uint
	accountID          uint
	equipmentSerial    string
	equipmentModel     string
	equipmentLocation  string
	problemType        string
	description        string
	priority           vo.Priority
	status             vo.TicketStatus
	assignedTo         string
	resolution         string
	satisfactionRating *int
	createdAt          time.Time
	updatedAt          time.Time
	resolvedAt         *time.Time
	pendingHistory     []*HistoryEntry
}

func NewTicket(
	accountID uint,
	equipmentSerial string,
	equipmentModel string,
	equipmentLocation string,
	problemType string,
	description string,
	priority vo.Priority,
) (*Ticket, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if strings.TrimSpace(equipmentSerial) == "" {
		return nil, fmt.Errorf("equipment serial is required")
	}
	if strings.TrimSpace(problemType) == "" {
		return nil, fmt.Errorf("problem type is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority()
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now().UTC()

	t := &Ticket{
		accountID:         accountID,
		equipmentSerial:   equipmentSerial,
		equipmentModel:    equipmentModel,
		equipmentLocation: equipmentLocation,
		problemType:       problemType,
		description:       description,
		priority:          priority,
		status:            vo.StatusOpen,
		createdAt:         now,
		updatedAt:         now,
	}
	t.recordHistory(vo.ActionCreated, "Chamado criado", &accountID)

	return t, nil
}

func ReconstructTicket(
	id uint,
	accountID uint,
	equipmentSerial string,
	equipmentModel string,
	equipmentLocation string,
	problemType string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	assignedTo string,
	resolution string,
	satisfactionRating *int,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:                 id,
		accountID:          accountID,
		equipmentSerial:    equipmentSerial,
		equipmentModel:     equipmentModel,
		equipmentLocation:  equipmentLocation,
		problemType:        problemType,
		description:        description,
		priority:           priority,
		status:             status,
		assignedTo:         assignedTo,
		resolution:         resolution,
		satisfactionRating: satisfactionRating,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		resolvedAt:         resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint { return t.id }
func (t *Ticket) AccountID() uint { return t.accountID }
func (t *Ticket) EquipmentSerial() string { return t.equipmentSerial }
func (t *Ticket) EquipmentModel() string { return t.equipmentModel }
func (t *Ticket) EquipmentLocation() string { return t.equipmentLocation }
func (t *Ticket) ProblemType() string { return t.problemType }
func (t *Ticket) Description() string { return t.description }
func (t *Ticket) Priority() vo.Priority { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) AssignedTo() string { return t.assignedTo }
func (t *Ticket) Resolution() string { return t.resolution }
func (t *Ticket) SatisfactionRating() *int { return t.satisfactionRating }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket through the state machine. resolvedAt is
// latched the first time the ticket enters resolved and never cleared.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, actorID *uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	oldStatus := t.status
	t.status = newStatus
	t.touch()

	if newStatus.IsResolved() && t.resolvedAt == nil {
		now := time.Now().UTC()
		t.resolvedAt = &now
	}

	t.recordHistory(vo.ActionStatusChanged,
		fmt.Sprintf("Status alterado de %s para %s", oldStatus, newStatus), actorID)

	return nil
}

func (t *Ticket) Assign(assignedTo string) {
	if t.assignedTo == assignedTo {
		return
	}
	t.assignedTo = assignedTo
	t.touch()
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) AddResolution(resolution string, actorID *uint) error {
	if strings.TrimSpace(resolution) == "" {
		return fmt.Errorf("resolution cannot be empty")
	}
	t.resolution = resolution
	t.touch()
	t.recordHistory(vo.ActionResolutionAdded, "Resolução registrada", actorID)
	return nil
}

// Close closes the ticket from any non-closed state, optionally recording
// a satisfaction rating in the same step.
func (t *Ticket) Close(rating *int, actorID *uint) error {
	if t.status.IsClosed() {
		return fmt.Errorf("ticket is already closed")
	}
	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return err
		}
		t.satisfactionRating = rating
	}

	t.status = vo.StatusClosed
	t.touch()

	desc := "Chamado encerrado pelo cliente"
	if rating != nil {
		desc = fmt.Sprintf("Chamado encerrado pelo cliente com avaliação %d/5", *rating)
	}
	t.recordHistory(vo.ActionClosed, desc, actorID)

	return nil
}

// Rate records a satisfaction rating on a resolved ticket.
func (t *Ticket) Rate(rating int, actorID *uint) error {
	if !t.status.IsResolved() {
		return fmt.Errorf("ticket can only be rated when resolved")
	}
	if err := validateRating(rating); err != nil {
		return err
	}

	t.satisfactionRating = &rating
	t.touch()
	t.recordHistory(vo.ActionRated, fmt.Sprintf("Avaliação registrada: %d/5", rating), actorID)

	return nil
}

// RecordAttachment appends the history entry for an uploaded file. The
// attachment row itself is created by the repository alongside this entry.
func (t *Ticket) RecordAttachment(originalName string, actorID *uint) {
	t.touch()
	t.recordHistory(vo.ActionAttachmentAdded, fmt.Sprintf("Arquivo anexado: %s", originalName), actorID)
}

// PullPendingHistory returns the history entries recorded since the last
// pull and clears the pending list. The repository persists them in the
// same transaction as the ticket mutation.
func (t *Ticket) PullPendingHistory() []*HistoryEntry {
	entries := t.pendingHistory
	t.pendingHistory = nil
	return entries
}

func (t *Ticket) recordHistory(action vo.HistoryAction, description string, actorID *uint) {
	t.pendingHistory = append(t.pendingHistory, NewHistoryEntry(t.id, action, description, actorID))
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}
