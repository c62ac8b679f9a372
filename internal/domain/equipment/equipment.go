package equipment

import (
	"fmt"
	"strings"
	"time"

	vo "reinkjet/internal/domain/equipment/value_objects"
)

// Counters holds the print counter readings for one device. Initial
// values are taken at contract start; current values are updated by
// meter readings.
type Counters struct {
	InitialBW    int
	CurrentBW    int
	InitialColor int
	CurrentColor int
}

// VolumeBW returns black-and-white print volume since contract start,
// clamped at zero so a counter reset never produces a negative volume.
func (c Counters) VolumeBW() int {
	return clampVolume(c.CurrentBW, c.InitialBW)
}

// VolumeColor returns color print volume since contract start, clamped
// at zero.
func (c Counters) VolumeColor() int {
	return clampVolume(c.CurrentColor, c.InitialColor)
}

func clampVolume(current, initial int) int {
	v := current - initial
	if v < 0 {
		return 0
	}
	return v
}

// Equipment is the aggregate root for a fleet device. The owning account
// is immutable after creation.
type Equipment struct {
	id            uint
	accountID     uint
	serialNumber  string
	model         string
	brand         string
	equipmentType string
	location      string
	department    string
	status        vo.EquipmentStatus
	contractStart *time.Time
	contractEnd   *time.Time
	counters      Counters
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEquipment(
	accountID uint,
	serialNumber string,
	model string,
	brand string,
	equipmentType string,
	location string,
	department string,
) (*Equipment, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if strings.TrimSpace(serialNumber) == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}

	now := time.Now().UTC()

	return &Equipment{
		accountID:     accountID,
		serialNumber:  strings.TrimSpace(serialNumber),
		model:         model,
		brand:         brand,
		equipmentType: equipmentType,
		location:      location,
		department:    department,
		status:        vo.StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	accountID uint,
	serialNumber string,
	model string,
	brand string,
	equipmentType string,
	location string,
	department string,
	status vo.EquipmentStatus,
	contractStart *time.Time,
	contractEnd *time.Time,
	counters Counters,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid equipment status: %s", status)
	}

	return &Equipment{
		id:            id,
		accountID:     accountID,
		serialNumber:  serialNumber,
		model:         model,
		brand:         brand,
		equipmentType: equipmentType,
		location:      location,
		department:    department,
		status:        status,
		contractStart: contractStart,
		contractEnd:   contractEnd,
		counters:      counters,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (e *Equipment) ID() uint { return e.id }
func (e *Equipment) AccountID() uint { return e.accountID }
func (e *Equipment) SerialNumber() string { return e.serialNumber }
func (e *Equipment) Model() string { return e.model }
func (e *Equipment) Brand() string { return e.brand }
func (e *Equipment) EquipmentType() string { return e.equipmentType }
func (e *Equipment) Location() string { return e.location }
func (e *Equipment) Department() string { return e.department }
func (e *Equipment) Status() vo.EquipmentStatus { return e.status }
func (e *Equipment) ContractStart() *time.Time { return e.contractStart }
func (e *Equipment) ContractEnd() *time.Time { return e.contractEnd }
func (e *Equipment) Counters() Counters { return e.counters }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Equipment) ChangeStatus(newStatus vo.EquipmentStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid equipment status: %s", newStatus)
	}
	if e.status == newStatus {
		return nil
	}
	e.status = newStatus
	e.touch()
	return nil
}

func (e *Equipment) SetContractPeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("contract end cannot precede contract start")
	}
	e.contractStart = start
	e.contractEnd = end
	e.touch()
	return nil
}

// SetCounters replaces the counter readings. Current readings below the
// initial reading are accepted; volume calculations clamp at zero.
func (e *Equipment) SetCounters(counters Counters) {
	e.counters = counters
	e.touch()
}

func (e *Equipment) Relocate(location, department string) {
	e.location = location
	e.department = department
	e.touch()
}

func (e *Equipment) touch() {
	e.updatedAt = time.Now().UTC()
}
