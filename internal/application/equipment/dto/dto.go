package dto

import (
	"time"

	"reinkjet/internal/domain/equipment"
)

type EquipmentDTO struct {
	ID            uint       `json:"id"`
	SerialNumber  string     `json:"serial_number"`
	Model         string     `json:"model"`
	Brand         string     `json:"brand,omitempty"`
	EquipmentType string     `json:"equipment_type,omitempty"`
	Location      string     `json:"location,omitempty"`
	Department    string     `json:"department,omitempty"`
	Status        string     `json:"status"`
	ContractStart *time.Time `json:"contract_start,omitempty"`
	ContractEnd   *time.Time `json:"contract_end,omitempty"`
	InitialBW     int        `json:"counter_initial_bw"`
	CurrentBW     int        `json:"counter_current_bw"`
	InitialColor  int        `json:"counter_initial_color"`
	CurrentColor  int        `json:"counter_current_color"`
	VolumeBW      int        `json:"volume_bw"`
	VolumeColor   int        `json:"volume_color"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToEquipmentDTO(e *equipment.Equipment) *EquipmentDTO {
	if e == nil {
		return nil
	}

	counters := e.Counters()

	return &EquipmentDTO{
		ID:            e.ID(),
		SerialNumber:  e.SerialNumber(),
		Model:         e.Model(),
		Brand:         e.Brand(),
		EquipmentType: e.EquipmentType(),
		Location:      e.Location(),
		Department:    e.Department(),
		Status:        e.Status().String(),
		ContractStart: e.ContractStart(),
		ContractEnd:   e.ContractEnd(),
		InitialBW:     counters.InitialBW,
		CurrentBW:     counters.CurrentBW,
		InitialColor:  counters.InitialColor,
		CurrentColor:  counters.CurrentColor,
		VolumeBW:      counters.VolumeBW(),
		VolumeColor:   counters.VolumeColor(),
		CreatedAt:     e.CreatedAt(),
	}
}

func ToEquipmentDTOs(items []*equipment.Equipment) []*EquipmentDTO {
	dtos := make([]*EquipmentDTO, 0, len(items))
	for _, e := range items {
		dtos = append(dtos, ToEquipmentDTO(e))
	}
	return dtos
}

type EquipmentStatsDTO struct {
	Total         int64            `json:"total"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByType        map[string]int64 `json:"by_type"`
	ByLocation    map[string]int64 `json:"by_location"`
	TotalVolBW    int64            `json:"total_volume_bw"`
	TotalVolColor int64            `json:"total_volume_color"`
}
