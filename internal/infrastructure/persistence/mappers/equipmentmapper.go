package mappers

import (
	"reinkjet/internal/domain/equipment"
	vo "reinkjet/internal/domain/equipment/value_objects"
	"reinkjet/internal/infrastructure/persistence/models"
)

// EquipmentMapper handles the conversion between Equipment domain entities and persistence models.
type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	counters := e.Counters()

	return &models.EquipmentModel{
		ID:                  e.ID(),
		AccountID:           e.AccountID(),
		SerialNumber:        e.SerialNumber(),
		Model:               e.Model(),
		Brand:               e.Brand(),
		EquipmentType:       e.EquipmentType(),
		Location:            e.Location(),
		Department:          e.Department(),
		Status:              e.Status().String(),
		ContractStart:       e.ContractStart(),
		ContractEnd:         e.ContractEnd(),
		CounterInitialBW:    counters.InitialBW,
		CounterCurrentBW:    counters.CurrentBW,
		CounterInitialColor: counters.InitialColor,
		CounterCurrentColor: counters.CurrentColor,
		CreatedAt:           e.CreatedAt(),
		UpdatedAt:           e.UpdatedAt(),
	}
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	return equipment.ReconstructEquipment(
		model.ID,
		model.AccountID,
		model.SerialNumber,
		model.Model,
		model.Brand,
		model.EquipmentType,
		model.Location,
		model.Department,
		vo.EquipmentStatus(model.Status),
		model.ContractStart,
		model.ContractEnd,
		equipment.Counters{
			InitialBW:    model.CounterInitialBW,
			CurrentBW:    model.CounterCurrentBW,
			InitialColor: model.CounterInitialColor,
			CurrentColor: model.CounterCurrentColor,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}
