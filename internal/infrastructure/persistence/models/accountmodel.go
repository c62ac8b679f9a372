package models

import "time"

type AccountModel struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;size:80;not null"`
	Email          string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string `gorm:"size:255;not null"`
	FullName       string `gorm:"size:120;not null"`
	Phone          string `gorm:"size:30"`
	CompanyName    string `gorm:"size:120;not null"`
	CompanyCNPJ    string `gorm:"size:20"`
	CompanyAddress string `gorm:"size:255"`
	CompanyCity    string `gorm:"size:100"`
	CompanyState   string `gorm:"size:2"`
	CompanyZip     string `gorm:"size:10"`
	ContractNumber string `gorm:"size:50"`
	ContractType   string `gorm:"size:20;not null;default:outsourcing"`
	IsActive       bool   `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastLogin      *time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AccountModel) TableName() string {
	return "accounts"
}
