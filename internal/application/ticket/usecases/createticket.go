package usecases

import (
	"context"
	"fmt"

	"reinkjet/internal/application/ticket/dto"
	"reinkjet/internal/domain/equipment"
	"reinkjet/internal/domain/ticket"
	vo "reinkjet/internal/domain/ticket/value_objects"
	"reinkjet/internal/shared/constants"
	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/goroutine"
	"reinkjet/internal/shared/logger"
)

type CreateTicketCommand struct {
	AccountID       uint
	AccountName     string
	CompanyName     string
	EquipmentSerial string
	ProblemType     string
	Description     string
	Priority        string
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	equipmentRepo equipment.EquipmentRepository
	notifier      Notifier
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	equipmentRepo equipment.EquipmentRepository,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		equipmentRepo: equipmentRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"account_id", cmd.AccountID, "equipment_serial", cmd.EquipmentSerial)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	item, err := uc.equipmentRepo.GetBySerialNumber(ctx, cmd.EquipmentSerial)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
		}
		uc.logger.Errorw("failed to look up equipment", "serial_number", cmd.EquipmentSerial, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	// A serial belonging to another account looks exactly like an
	// unknown serial.
	if item.AccountID() != cmd.AccountID {
		return nil, errors.NewNotFoundError(constants.ErrMsgResourceNotFound)
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.DefaultPriority()
	}

	newTicket, err := ticket.NewTicket(
		cmd.AccountID,
		item.SerialNumber(),
		item.Model(),
		item.Location(),
		cmd.ProblemType,
		cmd.Description,
		priority,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "account_id", cmd.AccountID)

	// Notification is best effort and must never delay or fail the request.
	fields := map[string]string{
		"ticket_id":        fmt.Sprintf("%d", newTicket.ID()),
		"account_name":     cmd.AccountName,
		"company_name":     cmd.CompanyName,
		"equipment_serial": newTicket.EquipmentSerial(),
		"equipment_model":  newTicket.EquipmentModel(),
		"problem_type":     newTicket.ProblemType(),
		"description":      newTicket.Description(),
		"priority":         newTicket.Priority().String(),
	}
	goroutine.SafeGo(uc.logger, "ticket-created-notification", func() {
		if !uc.notifier.Notify("ticket_created", fields) {
			uc.logger.Warnw("ticket notification was not delivered", "ticket_id", newTicket.ID())
		}
	})

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.AccountID == 0 {
		return errors.NewValidationError("account ID is required")
	}
	if cmd.EquipmentSerial == "" {
		return errors.NewValidationError("equipment_serial is required")
	}
	if cmd.ProblemType == "" {
		return errors.NewValidationError("problem_type is required")
	}
	if cmd.Description == "" {
		return errors.NewValidationError("description is required")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
