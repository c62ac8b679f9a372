package models

import "time"

type EquipmentModel struct {
	ID                  uint   `gorm:"primaryKey"`
	AccountID           uint   `gorm:"not null;index"`
	SerialNumber        string `gorm:"uniqueIndex;size:50;not null"`
	Model               string `gorm:"size:100;not null"`
	Brand               string `gorm:"size:50"`
	EquipmentType       string `gorm:"size:50;index"`
	Location            string `gorm:"size:120;index"`
	Department          string `gorm:"size:120"`
	Status              string `gorm:"size:20;not null;index"`
	ContractStart       *time.Time
	ContractEnd         *time.Time
	CounterInitialBW    int `gorm:"not null;default:0"`
	CounterCurrentBW    int `gorm:"not null;default:0"`
	CounterInitialColor int `gorm:"not null;default:0"`
	CounterCurrentColor int `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (EquipmentModel) TableName() string {
	return "equipment"
}
