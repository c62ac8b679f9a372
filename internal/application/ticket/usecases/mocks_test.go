package usecases

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/logger"
)

// errDatabase stands in for a driver-level failure.
var errDatabase = errors.New("database error")

type mockTicketRepository struct {
	SaveFunc       func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc     func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc    func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc       func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	GetStatsFunc   func(ctx context.Context, accountID uint, recentSince time.Time) (*ticket.StatsResult, error)
	GetHistoryFunc func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetStats(ctx context.Context, accountID uint, recentSince time.Time) (*ticket.StatsResult, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, accountID, recentSince)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetHistory(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, attachment *ticket.Attachment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockEquipmentRepository struct {
	SaveFunc                 func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc               func(ctx context.Context, e *equipment.Equipment) error
	GetByIDFunc              func(ctx context.Context, equipmentID uint) (*equipment.Equipment, error)
	GetBySerialNumberFunc    func(ctx context.Context, serialNumber string) (*equipment.Equipment, error)
	ListFunc                 func(ctx context.Context, filter equipment.EquipmentFilter) ([]*equipment.Equipment, error)
	GetStatsFunc             func(ctx context.Context, accountID uint) (*equipment.StatsResult, error)
	ListLocationsFunc        func(ctx context.Context, accountID uint) ([]string, error)
	ListTypesFunc            func(ctx context.Context, accountID uint) ([]string, error)
	ExistsBySerialNumberFunc func(ctx context.Context, serialNumber string) (bool, error)
}

func (m *mockEquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, equipmentID uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, equipmentID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*equipment.Equipment, error) {
	if m.GetBySerialNumberFunc != nil {
		return m.GetBySerialNumberFunc(ctx, serialNumber)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context, filter equipment.EquipmentFilter) ([]*equipment.Equipment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetStats(ctx context.Context, accountID uint) (*equipment.StatsResult, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ListLocations(ctx context.Context, accountID uint) ([]string, error) {
	if m.ListLocationsFunc != nil {
		return m.ListLocationsFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ListTypes(ctx context.Context, accountID uint) ([]string, error) {
	if m.ListTypesFunc != nil {
		return m.ListTypesFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	if m.ExistsBySerialNumberFunc != nil {
		return m.ExistsBySerialNumberFunc(ctx, serialNumber)
	}
	return false, nil
}

type mockNotifier struct {
	NotifyFunc func(templateKey string, fields map[string]string) bool
}

func (m *mockNotifier) Notify(templateKey string, fields map[string]string) bool {
	if m.NotifyFunc != nil {
		return m.NotifyFunc(templateKey, fields)
	}
	return true
}

type mockFileStorage struct {
	SaveFunc   func(content io.Reader, originalName string) (string, string, int64, error)
	RemoveFunc func(storedName string) error
}

func (m *mockFileStorage) Save(content io.Reader, originalName string) (string, string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(content, originalName)
	}
	return "stored-name", "/tmp/stored-name", 0, nil
}

func (m *mockFileStorage) Remove(storedName string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
}

type mockTransactionRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int { return &v }

// newStoredTicket builds a ticket that looks like it was loaded from the
// database: it has an ID and no pending history.
func newStoredTicket(t *testing.T, accountID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(accountID, "SN-1001", "WorkCentre 5335", "3º andar", "maintenance", "Paper jam on tray 2", "")
	require.NoError(t, err)
	require.NoError(t, tk.SetID(100))
	tk.PullPendingHistory()
	return tk
}
