package models

import "time"

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	AccountID          uint   `gorm:"not null;index"`
	EquipmentSerial    string `gorm:"size:50;not null;index"`
	EquipmentModel     string `gorm:"size:100"`
	EquipmentLocation  string `gorm:"size:120"`
	ProblemType        string `gorm:"size:50;not null"`
	Description        string `gorm:"type:text;not null"`
	Priority           string `gorm:"size:20;not null;index"`
	Status             string `gorm:"size:20;not null;index"`
	AssignedTo         string `gorm:"size:120"`
	Resolution         string `gorm:"type:text"`
	SatisfactionRating *int
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
	ResolvedAt         *time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketHistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Action      string `gorm:"size:30;not null"`
	Description string `gorm:"type:text"`
	ActorID     *uint
	CreatedAt   time.Time `gorm:"index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_history"
}

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	FileName     string `gorm:"size:100;not null"`
	OriginalName string `gorm:"size:255;not null"`
	FilePath     string `gorm:"size:255;not null"`
	FileSize     int64  `gorm:"not null;default:0"`
	MimeType     string `gorm:"size:100"`
	CreatedAt    time.Time
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
