package mappers

import (
	"reinkjet/internal/domain/ticket"
	vo "reinkjet/internal/domain/ticket/value_objects"
	"reinkjet/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel
	HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		AccountID:          t.AccountID(),
		EquipmentSerial:    t.EquipmentSerial(),
		EquipmentModel:     t.EquipmentModel(),
		EquipmentLocation:  t.EquipmentLocation(),
		ProblemType:        t.ProblemType(),
		Description:        t.Description(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		AssignedTo:         t.AssignedTo(),
		Resolution:         t.Resolution(),
		SatisfactionRating: t.SatisfactionRating(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ResolvedAt:         t.ResolvedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.AccountID,
		model.EquipmentSerial,
		model.EquipmentModel,
		model.EquipmentLocation,
		model.ProblemType,
		model.Description,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.AssignedTo,
		model.Resolution,
		model.SatisfactionRating,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
	)
}

func (m *TicketMapperImpl) HistoryToModel(h *ticket.HistoryEntry) *models.TicketHistoryModel {
	return &models.TicketHistoryModel{
		ID:          h.ID(),
		TicketID:    h.TicketID(),
		Action:      h.Action().String(),
		Description: h.Description(),
		ActorID:     h.ActorID(),
		CreatedAt:   h.CreatedAt(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.TicketHistoryModel) *ticket.HistoryEntry {
	return ticket.ReconstructHistoryEntry(
		model.ID,
		model.TicketID,
		vo.HistoryAction(model.Action),
		model.Description,
		model.ActorID,
		model.CreatedAt,
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		FileName:     a.StoredName(),
		OriginalName: a.OriginalName(),
		FilePath:     a.FilePath(),
		FileSize:     a.FileSize(),
		MimeType:     a.MimeType(),
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FileName,
		model.OriginalName,
		model.FilePath,
		model.FileSize,
		model.MimeType,
		model.CreatedAt,
	)
}
