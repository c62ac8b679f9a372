package usecases

import (
	"context"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/ticket"
	vo "reinkjet/internal/domain/ticket/value_objects"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
	"reinkjet/internal/shared/utils"
)

type ListTicketsQuery struct {
	AccountID uint
	Status    string
	Priority  string
	Page      int
	PageSize  int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.AccountID == 0 {
		return nil, errors.NewValidationError("account ID is required")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.TicketFilter{
		AccountID: &query.AccountID,
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "account_id", query.AccountID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:  dto.ToTicketDTOs(tickets),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
