package usecases

import (
	"context"

	"reinkjet/internal/shared/errors"
	"reinkjet/internal/shared/logger"
)

type SendContactFormCommand struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type SendContactFormUseCase struct {
	notifier Notifier
	logger   logger.Interface
}

func NewSendContactFormUseCase(notifier Notifier, logger logger.Interface) *SendContactFormUseCase {
	return &SendContactFormUseCase{
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SendContactFormUseCase) Execute(ctx context.Context, cmd SendContactFormCommand) (*SendResult, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Message == "" {
		return nil, errors.NewValidationError("name, email and message are required")
	}

	ok := uc.notifier.Notify("contact_form", map[string]string{
		"name":    cmd.Name,
		"email":   cmd.Email,
		"phone":   cmd.Phone,
		"subject": cmd.Subject,
		"message": cmd.Message,
	})
	if !ok {
		uc.logger.Warnw("contact form email was not delivered", "email", cmd.Email)
		return &SendResult{Success: false, Message: "Falha ao enviar mensagem de contato"}, nil
	}

	return &SendResult{Success: true, Message: "Mensagem enviada com sucesso"}, nil
}
