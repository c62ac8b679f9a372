package usecases

import (
	"context"

	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type SendTicketNotificationCommand struct {
	TicketID        string
	AccountName     string
	CompanyName     string
	EquipmentSerial string
	EquipmentModel  string
	ProblemType     string
	Description     string
	Priority        string
}

type SendTicketNotificationUseCase struct {
	notifier Notifier
	logger   logger.Interface
}

func NewSendTicketNotificationUseCase(notifier Notifier, logger logger.Interface) *SendTicketNotificationUseCase {
	return &SendTicketNotificationUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SendTicketNotificationUseCase) Execute(ctx context.Context, cmd SendTicketNotificationCommand) (*SendResult, error) {
	if cmd.EquipmentSerial == "" || cmd.ProblemType == "" {
		return nil, errors.NewValidationError("equipment_serial and problem_type are required")
	}

	ok := uc.notifier.Notify("ticket_created", map[string]string{
		"ticket_id":        cmd.TicketID,
		"account_name":     cmd.AccountName,
		"company_name":     cmd.CompanyName,
		"equipment_serial": cmd.EquipmentSerial,
		"equipment_model":  cmd.EquipmentModel,
		"problem_type":     cmd.ProblemType,
		"description":      cmd.Description,
		"priority":         cmd.Priority,
	})
	if !ok {
		uc.logger.Warnw("ticket notification email was not delivered", "equipment_serial", cmd.EquipmentSerial)
		return &SendResult{Success: false, Message: "Falha ao enviar notificação de chamado"}, nil
	}

	return &SendResult{Success: true, Message: "Notificação de chamado enviada com sucesso"}, nil
}
