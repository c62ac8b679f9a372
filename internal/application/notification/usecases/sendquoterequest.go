package usecases

import (
	"context"

	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type SendQuoteRequestCommand struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	ServiceType string
	Message     string
}

type SendQuoteRequestUseCase struct {
	notifier Notifier
	logger   logger.Interface
}

func NewSendQuoteRequestUseCase(notifier Notifier, logger logger.Interface) *SendQuoteRequestUseCase {
	return &SendQuoteRequestUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SendQuoteRequestUseCase) Execute(ctx context.Context, cmd SendQuoteRequestCommand) (*SendResult, error) {
	if cmd.Name == "" || cmd.Email == "" {
		return nil, errors.NewValidationError("name and email are required")
	}

	ok := uc.notifier.Notify("quote_request", map[string]string{
		"name":         cmd.Name,
		"email":        cmd.Email,
		"phone":        cmd.Phone,
		"company":      cmd.Company,
		"service_type": cmd.ServiceType,
		"message":      cmd.Message,
	})
	if !ok {
		uc.logger.Warnw("quote request email was not delivered", "email", cmd.Email)
		return &SendResult{Success: false, Message: "Falha ao enviar solicitação de orçamento"}, nil
	}

	return &SendResult{Success: true, Message: "Solicitação de orçamento enviada com sucesso"}, nil
}
