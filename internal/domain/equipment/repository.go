package equipment

import (
	"context"

	vo "reinkjet/internal/domain/equipment/value_objects"
)

// EquipmentFilter narrows a fleet listing. Location matches as a
// case-insensitive substring.
type EquipmentFilter struct {
	AccountID uint
	Status    *vo.EquipmentStatus
	Type      *string
	Location  *string
}

// StatsResult aggregates fleet numbers for one account. Volume sums are
// clamped per device before summing.
type StatsResult struct {
	Total         int64
	ByStatus      map[string]int64
	ByType        map[string]int64
	ByLocation    map[string]int64
	TotalVolBW    int64
	TotalVolColor int64
}

type EquipmentRepository interface {
	Save(ctx context.Context, equipment *Equipment) error
	Update(ctx context.Context, equipment *Equipment) error
	GetByID(ctx context.Context, equipmentID uint) (*Equipment, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]*Equipment, error)
	GetStats(ctx context.Context, accountID uint) (*StatsResult, error)
	// ListLocations returns the distinct non-blank locations of an
	// account's fleet, sorted ascending.
	ListLocations(ctx context.Context, accountID uint) ([]string, error)
	// ListTypes returns the distinct non-blank equipment types of an
	// account's fleet, sorted ascending.
	ListTypes(ctx context.Context, accountID uint) ([]string, error)
	ExistsBySerialNumber(ctx context.Context, serialNumber string) (bool, error)
}
