package usecases

import (
	"context"

	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type ListTypesQuery struct {
	AccountID uint
}

type ListTypesUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewListTypesUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *ListTypesUseCase {
	return &ListTypesUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListTypesUseCase) Execute(ctx context.Context, query ListTypesQuery) ([]string, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	types, err := uc.equipmentRepo.ListTypes(ctx, query.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to list equipment types", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to list equipment types")
	}

	return types, nil
}
