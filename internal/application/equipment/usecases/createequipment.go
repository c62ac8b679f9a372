package usecases

import (
	"context"
	"time"

	"reinkjet/internal/application/equipment/dto"
	"reinkjet/internal/domain/equipment"
	vo "reinkjet/internal/domain/equipment/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	AccountID     uint
	SerialNumber  string
	Model         string
	Brand         string
	EquipmentType string
	Location      string
	Department    string
	Status        string
	ContractStart *time.Time
	ContractEnd   *time.Time
	InitialBW     int
	CurrentBW     int
	InitialColor  int
	CurrentColor  int
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.EquipmentRepository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(equipmentRepo equipment.EquipmentRepository, logger logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*dto.EquipmentDTO, error) {
	uc.logger.Infow("executing create equipment use case", "serial_number", cmd.SerialNumber, "account_id", cmd.AccountID)

	item, err := equipment.NewEquipment(
		cmd.AccountID,
		cmd.SerialNumber,
		cmd.Model,
		cmd.Brand,
		cmd.EquipmentType,
		cmd.Location,
		cmd.Department,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Status != "" {
		status, err := vo.NewEquipmentStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := item.ChangeStatus(status); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ContractStart != nil || cmd.ContractEnd != nil {
		if err := item.SetContractPeriod(cmd.ContractStart, cmd.ContractEnd); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	item.SetCounters(equipment.Counters{
		InitialBW:    cmd.InitialBW,
		CurrentBW:    cmd.CurrentBW,
		InitialColor: cmd.InitialColor,
		CurrentColor: cmd.CurrentColor,
	})

	if exists, err := uc.equipmentRepo.ExistsBySerialNumber(ctx, item.SerialNumber()); err != nil {
		uc.logger.Errorw("failed to check serial uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to create equipment")
	} else if exists {
		return nil, errors.NewConflictError("serial number is already registered")
	}

	if err := uc.equipmentRepo.Save(ctx, item); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("serial number is already registered")
		}
		uc.logger.Errorw("failed to save equipment", "error", err)
		return nil, errors.NewInternalError("failed to create equipment")
	}

	uc.logger.Infow("equipment created", "equipment_id", item.ID(), "serial_number", item.SerialNumber())

	return dto.ToEquipmentDTO(item), nil
}
