package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/infrastructure/persistence/mappers"
	"reinkjet/internal/infrastructure/persistence/models"
	db "reinkjet/internal/shared/db"
	apperrors "reinkjet/internal/shared/errors"
)

// Volume sums clamp each device's counter delta at zero, so a reset
// counter never drags the fleet total negative. CASE WHEN is portable
// across MySQL and SQLite.
const (
	clampedVolumeBWExpr = "COALESCE(SUM(CASE WHEN counter_current_bw > counter_initial_bw " +
		"THEN counter_current_bw - counter_initial_bw ELSE 0 END), 0)"
	clampedVolumeColorExpr = "COALESCE(SUM(CASE WHEN counter_current_color > counter_initial_color " +
		"THEN counter_current_color - counter_initial_color ELSE 0 END), 0)"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, equipmentID uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, equipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("serial_number = ?", serialNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) List(ctx context.Context, filter equipment.EquipmentFilter) ([]*equipment.Equipment, error) {
	tx := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{}).
		Where("account_id = ?", filter.AccountID)

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		tx = tx.Where("equipment_type = ?", *filter.Type)
	}
	if filter.Location != nil {
		tx = tx.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filter.Location)+"%")
	}

	var rows []models.EquipmentModel
	if err := tx.Order("location asc, model asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	items := make([]*equipment.Equipment, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *EquipmentRepository) GetStats(ctx context.Context, accountID uint) (*equipment.StatsResult, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &equipment.StatsResult{
		ByStatus:   make(map[string]int64),
		ByType:     make(map[string]int64),
		ByLocation: make(map[string]int64),
	}

	if err := tx.Model(&models.EquipmentModel{}).
		Where("account_id = ?", accountID).
		Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count equipment: %w", err)
	}

	if err := r.countBy(tx, accountID, "status", stats.ByStatus); err != nil {
		return nil, err
	}
	if err := r.countBy(tx, accountID, "equipment_type", stats.ByType); err != nil {
		return nil, err
	}
	if err := r.countBy(tx, accountID, "location", stats.ByLocation); err != nil {
		return nil, err
	}

	var volumes struct {
		VolBW    int64
		VolColor int64
	}
	if err := tx.Model(&models.EquipmentModel{}).
		Select(clampedVolumeBWExpr+" AS vol_bw, "+clampedVolumeColorExpr+" AS vol_color").
		Where("account_id = ?", accountID).
		Scan(&volumes).Error; err != nil {
		return nil, fmt.Errorf("failed to sum print volumes: %w", err)
	}
	stats.TotalVolBW = volumes.VolBW
	stats.TotalVolColor = volumes.VolColor

	return stats, nil
}

func (r *EquipmentRepository) countBy(tx *gorm.DB, accountID uint, column string, dest map[string]int64) error {
	var rows []struct {
		Key   string
		Count int64
	}
	if err := tx.Model(&models.EquipmentModel{}).
		Select(column+" AS `key`, COUNT(*) AS count").
		Where("account_id = ?", accountID).
		Group(column).
		Scan(&rows).Error; err != nil {
		return fmt.Errorf("failed to group equipment by %s: %w", column, err)
	}
	for _, row := range rows {
		if row.Key != "" {
			dest[row.Key] = row.Count
		}
	}
	return nil
}

func (r *EquipmentRepository) ListLocations(ctx context.Context, accountID uint) ([]string, error) {
	return r.listDistinct(ctx, accountID, "location")
}

func (r *EquipmentRepository) ListTypes(ctx context.Context, accountID uint) ([]string, error) {
	return r.listDistinct(ctx, accountID, "equipment_type")
}

func (r *EquipmentRepository) listDistinct(ctx context.Context, accountID uint, column string) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var values []string
	if err := tx.Model(&models.EquipmentModel{}).
		Distinct(column).
		Where("account_id = ? AND "+column+" <> ''", accountID).
		Order(column+" asc").
		Pluck(column, &values).Error; err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}

	return values, nil
}

func (r *EquipmentRepository) ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.EquipmentModel{}).
		Where("serial_number = ?", serialNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count equipment: %w", err)
	}

	return count > 0, nil
}
