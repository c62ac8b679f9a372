package usecases

import (
	"context"

	"reinkjet/internal/application/equipment/dto"
	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type GetEquipmentQuery struct {
	AccountID   uint
	EquipmentID uint
}

type GetEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewGetEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, query GetEquipmentQuery) (*dto.EquipmentDTO, error) {
	if query.AccountID == 0 || query.EquipmentID == 0 {
		return nil, errors.NewValidationError("account ID and equipment ID are required")
	}

	item, err := uc.equipmentRepo.GetByID(ctx, query.EquipmentID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load equipment", "equipment_id", query.EquipmentID, "error", err)
		return nil, errors.NewInternalError("failed to load equipment")
	}

	// Equipment owned by another account is reported the same way as
	// equipment that does not exist.
	if item.AccountID() != query.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	return dto.ToEquipmentDTO(item), nil
}
