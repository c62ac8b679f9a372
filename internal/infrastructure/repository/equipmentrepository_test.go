package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reinkjet/internal/domain/equipment"
	vo "reinkjet/internal/domain/equipment/value_objects"
	apperrors "reinkjet/internal/shared/errors"
)

func createTestEquipment(t *testing.T, db *gorm.DB, accountID uint, serial, equipmentType, location string) *equipment.Equipment {
	t.Helper()

	e, err := equipment.NewEquipment(accountID, serial, "WorkCentre 5335", "Xerox", equipmentType, location, "Financeiro")
	require.NoError(t, err)

	require.NoError(t, NewEquipmentRepository(db).Save(context.Background(), e))
	return e
}

func TestEquipmentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAndGetByID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		e := createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º andar")

		require.NotZero(t, e.ID())

		found, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, "SN-1001", found.SerialNumber())
		assert.Equal(t, "Xerox", found.Brand())
		assert.Equal(t, vo.StatusActive, found.Status())
	})

	t.Run("GetBySerialNumber", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		e := createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º andar")

		found, err := repo.GetBySerialNumber(ctx, "SN-1001")
		require.NoError(t, err)
		assert.Equal(t, e.ID(), found.ID())

		_, err = repo.GetBySerialNumber(ctx, "SN-9999")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("UpdatePersistsStatusAndCounters", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		e := createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º andar")

		require.NoError(t, e.ChangeStatus(vo.StatusMaintenance))
		e.SetCounters(equipment.Counters{InitialBW: 1000, CurrentBW: 4500, InitialColor: 100, CurrentColor: 350})
		require.NoError(t, repo.Update(ctx, e))

		found, err := repo.GetByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusMaintenance, found.Status())
		assert.Equal(t, 4500, found.Counters().CurrentBW)
		assert.Equal(t, 3500, found.Counters().VolumeBW())
	})

	t.Run("ListFilters", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º Andar")
		printer := createTestEquipment(t, db, 1, "SN-1002", "impressora", "Térreo")
		createTestEquipment(t, db, 2, "SN-2001", "multifuncional", "3º Andar")

		// Only the owner's fleet.
		items, err := repo.List(ctx, equipment.EquipmentFilter{AccountID: 1})
		require.NoError(t, err)
		assert.Len(t, items, 2)

		typeFilter := "impressora"
		items, err = repo.List(ctx, equipment.EquipmentFilter{AccountID: 1, Type: &typeFilter})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, printer.ID(), items[0].ID())

		// Location matching is a case-insensitive substring.
		location := "andar"
		items, err = repo.List(ctx, equipment.EquipmentFilter{AccountID: 1, Location: &location})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "SN-1001", items[0].SerialNumber())

		status := vo.StatusMaintenance
		items, err = repo.List(ctx, equipment.EquipmentFilter{AccountID: 1, Status: &status})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("GetStats", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)

		a := createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º andar")
		a.SetCounters(equipment.Counters{InitialBW: 1000, CurrentBW: 4000, InitialColor: 0, CurrentColor: 500})
		require.NoError(t, repo.Update(ctx, a))

		// A reset counter contributes zero, not a negative delta.
		b := createTestEquipment(t, db, 1, "SN-1002", "impressora", "Térreo")
		require.NoError(t, b.ChangeStatus(vo.StatusInactive))
		b.SetCounters(equipment.Counters{InitialBW: 9000, CurrentBW: 200, InitialColor: 100, CurrentColor: 400})
		require.NoError(t, repo.Update(ctx, b))

		createTestEquipment(t, db, 2, "SN-2001", "multifuncional", "3º andar")

		stats, err := repo.GetStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Total)
		assert.Equal(t, int64(1), stats.ByStatus["active"])
		assert.Equal(t, int64(1), stats.ByStatus["inactive"])
		assert.Equal(t, int64(1), stats.ByType["multifuncional"])
		assert.Equal(t, int64(1), stats.ByLocation["Térreo"])
		assert.Equal(t, int64(3000), stats.TotalVolBW)
		assert.Equal(t, int64(800), stats.TotalVolColor)
	})

	t.Run("ListLocationsAndTypes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "Térreo")
		createTestEquipment(t, db, 1, "SN-1002", "impressora", "3º andar")
		createTestEquipment(t, db, 1, "SN-1003", "impressora", "3º andar")
		createTestEquipment(t, db, 1, "SN-1004", "scanner", "")
		createTestEquipment(t, db, 2, "SN-2001", "plotter", "Galpão")

		locations, err := repo.ListLocations(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"3º andar", "Térreo"}, locations)

		types, err := repo.ListTypes(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"impressora", "multifuncional", "scanner"}, types)
	})

	t.Run("ExistsBySerialNumber", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEquipmentRepository(db)
		createTestEquipment(t, db, 1, "SN-1001", "multifuncional", "3º andar")

		exists, err := repo.ExistsBySerialNumber(ctx, "SN-1001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsBySerialNumber(ctx, "SN-9999")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
