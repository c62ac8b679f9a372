package usecases

import (
	"context"

	"reinkjet/internal/application/equipment/dto"
)

type ListEquipmentExecutor interface {
	Execute(ctx context.Context, query ListEquipmentQuery) ([]*dto.EquipmentDTO, error)
}

type GetEquipmentExecutor interface {
	Execute(ctx context.Context, query GetEquipmentQuery) (*dto.EquipmentDTO, error)
}

type GetEquipmentStatsExecutor interface {
	Execute(ctx context.Context, query GetEquipmentStatsQuery) (*dto.EquipmentStatsDTO, error)
}

type ListLocationsExecutor interface {
	Execute(ctx context.Context, query ListLocationsQuery) ([]string, error)
}

type ListTypesExecutor interface {
	Execute(ctx context.Context, query ListTypesQuery) ([]string, error)
}

type CreateEquipmentExecutor interface {
	Execute(ctx context.Context, cmd CreateEquipmentCommand) (*dto.EquipmentDTO, error)
}
