package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/infrastructure/persistence/mappers"
	"reinkjet/internal/infrastructure/persistence/models"
	db "reinkjet/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AttachmentModel
	if err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(rows))
	for i := range rows {
		attachments = append(attachments, r.mapper.AttachmentToDomain(&rows[i]))
	}

	return attachments, nil
}
