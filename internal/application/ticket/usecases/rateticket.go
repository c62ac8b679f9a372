package usecases

import (
	"context"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type RateTicketCommand struct {
	AccountID uint
	TicketID  uint
	Rating    int
}

type RateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewRateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.AccountID == 0 || cmd.TicketID == 0 {
		return nil, errors.NewValidationError("account ID and ticket ID are required")
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, errors.NewValidationError("rating must be between 1 and 5")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to rate ticket")
	}

	if t.AccountID() != cmd.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	if err := t.Rate(cmd.Rating, &cmd.AccountID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to rate ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to rate ticket")
	}

	uc.logger.Infow("ticket rated", "ticket_id", t.ID(), "rating", cmd.Rating)

	return dto.ToTicketDTO(t), nil
}
