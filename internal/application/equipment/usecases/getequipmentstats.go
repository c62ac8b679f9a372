package usecases

import (
	"context"

	"reinkjet/internal/application/equipment/dto"
	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type GetEquipmentStatsQuery struct {
	AccountID uint
}

type GetEquipmentStatsUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewGetEquipmentStatsUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *GetEquipmentStatsUseCase {
	return &GetEquipmentStatsUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *GetEquipmentStatsUseCase) Execute(ctx context.Context, query GetEquipmentStatsQuery) (*dto.EquipmentStatsDTO, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	stats, err := uc.equipmentRepo.GetStats(ctx, query.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to load equipment stats", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to load equipment statistics")
	}

	return &dto.EquipmentStatsDTO{
		Total:         stats.Total,
		ByStatus:      stats.ByStatus,
		ByType:        stats.ByType,
		ByLocation:    stats.ByLocation,
		TotalVolBW:    stats.TotalVolBW,
		TotalVolColor: stats.TotalVolColor,
	}, nil
}
