package value_objects

import "fmt"

type EquipmentStatus string

const (
	StatusActive      EquipmentStatus = "active"
	StatusMaintenance EquipmentStatus = "maintenance"
	StatusInactive    EquipmentStatus = "inactive"
)

var validStatuses = map[EquipmentStatus]bool{
	StatusActive:      true,
	StatusMaintenance: true,
	StatusInactive:    true,
}

func NewEquipmentStatus(s string) (EquipmentStatus, error) {
	status := EquipmentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid equipment status: %s", s)
	}
	return status, nil
}

func (s EquipmentStatus) String() string {
	return string(s)
}

func (s EquipmentStatus) IsValid() bool {
	return validStatuses[s]
}

func (s EquipmentStatus) IsActive() bool {
	return s == StatusActive
}

func (s EquipmentStatus) IsMaintenance() bool {
	return s == StatusMaintenance
}

func (s EquipmentStatus) IsInactive() bool {
	return s == StatusInactive
}
