package dto

import (
	"time"

	"reinkjet/internal/domain/ticket"
)

type TicketDTO struct {
	ID                 uint            `json:"id"`
	EquipmentSerial    string          `json:"equipment_serial"`
	EquipmentModel     string          `json:"equipment_model,omitempty"`
	EquipmentLocation  string          `json:"equipment_location,omitempty"`
	ProblemType        string          `json:"problem_type"`
	Description        string          `json:"description"`
	Priority           string          `json:"priority"`
	Status             string          `json:"status"`
	AssignedTo         string          `json:"assigned_to,omitempty"`
	Resolution         string          `json:"resolution,omitempty"`
	SatisfactionRating *int            `json:"satisfaction_rating,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	ResolvedAt         *time.Time      `json:"resolved_at,omitempty"`
	History            []HistoryDTO    `json:"history,omitempty"`
	Attachments        []AttachmentDTO `json:"attachments,omitempty"`
}

type HistoryDTO struct {
	ID          uint      `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	ActorID     *uint     `json:"actor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketStatsDTO struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
	Recent     int64            `json:"recent"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                 t.ID(),
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

func ToTicketDTOs(items []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(items))
	for _, t := range items {
		dtos = append(dtos, ToTicketDTO(t))
	}
	return dtos
}

func ToHistoryDTOs(entries []*ticket.HistoryEntry) []HistoryDTO {
	dtos := make([]HistoryDTO, 0, len(entries))
	for _, h := range entries {
		dtos = append(dtos, HistoryDTO{
			ID:          h.ID(),
			Action:      h.Action().String(),
			Description: h.Description(),
			ActorID:     h.ActorID(),
			CreatedAt:   h.CreatedAt(),
		})
	}
	return dtos
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		FileName:     a.StoredName(),
		OriginalName: a.OriginalName(),
		FileSize:     a.FileSize(),
		MimeType:     a.MimeType(),
		CreatedAt:    a.CreatedAt(),
	}
}

func ToAttachmentDTOs(items []*ticket.Attachment) []AttachmentDTO {
	dtos := make([]AttachmentDTO, 0, len(items))
	for _, a := range items {
		dtos = append(dtos, ToAttachmentDTO(a))
	}
	return dtos
}
