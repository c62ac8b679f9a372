package usecases

import (
	"context"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type CloseTicketCommand struct {
	AccountID uint
	TicketID  uint
	Rating    *int
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error) {
	if cmd.AccountID == 0 || cmd.TicketID == 0 {
		return nil, errors.NewValidationError("account ID and ticket ID are required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	// Only the owner may close a ticket; others see a not-found.
	if t.AccountID() != cmd.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	if t.Status().IsClosed() {
		return nil, errors.NewConflictError("ticket is already closed")
	}

	if err := t.Close(cmd.Rating, &cmd.AccountID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "account_id", cmd.AccountID)

	return dto.ToTicketDTO(t), nil
}
