package migration

import (
	"reinkjet/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.EquipmentModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
		&models.AttachmentModel{},
	}
}
