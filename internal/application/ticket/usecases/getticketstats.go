package usecases

import (
	"context"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	"reinkjet/internal/shared/biztime"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	AccountID uint
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	// "Recent" counts tickets opened since the first day of the current
	// month in the business timezone.
	recentSince := biztime.StartOfCurrentMonthUTC(biztime.NowUTC())

	stats, err := uc.ticketRepo.GetStats(ctx, query.AccountID, recentSince)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket statistics")
	}

	return &dto.TicketStatsDTO{
		Total:      stats.Total,
		ByStatus:   stats.ByStatus,
		ByPriority: stats.ByPriority,
		Recent:     stats.Recent,
	}, nil
}
