package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/shared/logger"
)

var errDatabase = errors.New("database error")

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

func newStoredEquipment(t *testing.T, accountID uint, serial string) *equipment.Equipment {
	t.Helper()
	e, err := equipment.NewEquipment(accountID, serial, "WorkCentre 5335", "Xerox", "multifuncional", "3º andar", "Financeiro")
	require.NoError(t, err)
	require.NoError(t, e.SetID(10))
	return e
}
