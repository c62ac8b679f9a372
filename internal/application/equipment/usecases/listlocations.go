package usecases

import (
	"context"

	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type ListLocationsQuery struct {
	AccountID uint
}

type ListLocationsUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewListLocationsUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *ListLocationsUseCase {
	return &ListLocationsUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListLocationsUseCase) Execute(ctx context.Context, query ListLocationsQuery) ([]string, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	locations, err := uc.equipmentRepo.ListLocations(ctx, query.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to list locations", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to list locations")
	}

	return locations, nil
}
