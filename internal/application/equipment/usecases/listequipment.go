package usecases

import (
	"context"

	"reinkjet/internal/application/equipment/dto"
	"reinkjet/internal/domain/equipment"
	vo "reinkjet/internal/domain/equipment/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type ListEquipmentQuery struct {
	AccountID uint
	Status    string
	Type      string
	Location  string
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) ([]*dto.EquipmentDTO, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	filter := equipment.EquipmentFilter{AccountID: query.AccountID}

	if query.Status != "" {
		status, err := vo.NewEquipmentStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Type != "" {
		filter.Type = &query.Type
	}
	if query.Location != "" {
		filter.Location = &query.Location
	}

	items, err := uc.equipmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to list equipment")
	}

	return dto.ToEquipmentDTOs(items), nil
}
