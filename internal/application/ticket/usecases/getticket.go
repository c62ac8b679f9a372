package usecases

import (
	"context"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type GetTicketQuery struct {
	AccountID uint
	TicketID  uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.AccountID == 0 || query.TicketID == 0 {
		return nil, errors.NewValidationError("account ID and ticket ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	if t.AccountID() != query.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	result := dto.ToTicketDTO(t)

	history, err := uc.ticketRepo.GetHistory(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket history", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	result.History = dto.ToHistoryDTOs(history)

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket attachments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	result.Attachments = dto.ToAttachmentDTOs(attachments)

	return result, nil
}
